// Package anthropic generates diary feedback with the Claude Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("anthropic: empty response")

const systemPrompt = `당신은 따뜻하고 공감 능력이 뛰어난 상담가입니다.
사용자가 쓴 일기를 읽고 그 안에 담긴 감정을 부드럽게 짚어 주세요.
판단하거나 훈계하지 말고, 3~5문장의 한국어 존댓말로 위로와 격려를 전해 주세요.
목록이나 제목 없이 자연스러운 문단 하나로만 답하세요.`

// Config configures the generator.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
	// BaseURL overrides the API endpoint (tests).
	BaseURL string
}

// Generator asks Claude for empathetic feedback on diary content.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Generator from cfg.
func New(cfg Config, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Generate returns feedback text for content.
func (g *Generator) Generate(ctx context.Context, content string) (string, error) {
	start := time.Now()

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(content))),
		},
	})
	if err != nil {
		g.log.ErrorContext(ctx, "messages request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			parts = append(parts, strings.TrimSpace(block.Text))
		}
	}
	if len(parts) == 0 {
		return "", ErrEmptyResponse
	}

	g.log.DebugContext(ctx, "feedback generated",
		slog.String("model", g.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("elapsed", time.Since(start)))

	return strings.Join(parts, "\n\n"), nil
}

func buildPrompt(content string) string {
	return fmt.Sprintf("오늘의 일기입니다.\n\n<diary>\n%s\n</diary>", strings.TrimSpace(content))
}
