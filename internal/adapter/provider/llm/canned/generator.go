// Package canned produces feedback from a fixed set of responses. It needs no
// network access and is the default generator for local runs.
package canned

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
)

// ErrEmptyContent is returned when there is nothing to respond to.
var ErrEmptyContent = errors.New("canned: empty content")

// DefaultResponses are the stock replies picked at random.
var DefaultResponses = []string{
	"다시 읽어보니 더 깊은 감정이 느껴져요. 당신의 마음을 이해하고 있어요.",
	"시간이 지나면서 새로운 관점으로 바라볼 수 있게 되었네요.",
	"이런 순간들이 당신을 더 성숙하게 만들어가고 있어요.",
	"감정의 흐름을 잘 표현하고 계시네요. 정말 대단해요.",
	"작은 변화들이 모여 큰 성장을 만들어가고 있어요.",
}

// Generator returns one of its responses regardless of the input.
type Generator struct {
	responses []string
	pick      func(n int) int
}

// New creates a Generator. With no responses DefaultResponses are used.
func New(responses ...string) *Generator {
	if len(responses) == 0 {
		responses = DefaultResponses
	}
	return &Generator{responses: responses, pick: rand.IntN}
}

// Generate returns a random canned response.
func (g *Generator) Generate(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}
	return g.responses[g.pick(len(g.responses))], nil
}
