// Package cli implements the diary command line client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/client"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/internal/session"
	"github.com/heartmarshall/emotion-diary/internal/transport/rest"
)

// diaryAPI is the subset of the REST client used by the commands.
type diaryAPI interface {
	SignUp(ctx context.Context, email, password string) (*session.Session, error)
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*rest.UserResponse, error)
	ChangePassword(ctx context.Context, current, next, confirm string) error

	Submit(ctx context.Context, content string, target *civil.Date) (*client.Outcome, error)
	Edit(ctx context.Context, id uuid.UUID, content string) (*client.Outcome, error)
	Reanalyze(ctx context.Context, id uuid.UUID, content *string) (*client.Outcome, error)
	Delete(ctx context.Context, id uuid.UUID, confirmed bool) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Diary, error)
	List(ctx context.Context) ([]*domain.Diary, error)
	ListByDate(ctx context.Context, date civil.Date) ([]*domain.Diary, error)
	Calendar(ctx context.Context, month *calendar.Month) (calendar.MonthView, error)
}

// App carries what the commands share.
type App struct {
	api   diaryAPI
	loc   *time.Location
	level *slog.LevelVar
	in    *bufio.Reader
	out   io.Writer
	now   func() time.Time
}

// NewApp creates an App reading prompts from in and printing to out. level
// is raised to debug by --debug.
func NewApp(api diaryAPI, loc *time.Location, level *slog.LevelVar, in io.Reader, out io.Writer) *App {
	if level == nil {
		level = new(slog.LevelVar)
	}
	return &App{
		api:   api,
		loc:   loc,
		level: level,
		in:    bufio.NewReader(in),
		out:   out,
		now:   time.Now,
	}
}

// NewRootCommand builds the diary command tree.
func NewRootCommand(app *App) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:           "diary",
		Short:         "감정일기: write a diary entry and get warm feedback.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				app.level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log API traffic to stderr")
	cmd.SetOut(app.out)

	AddCommands(cmd, app)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command, app *App) {
	addAuth(topLevel, app)
	addEntry(topLevel, app)
	addViews(topLevel, app)
}

// Describe turns an error into a message for the user.
func Describe(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return "로그인이 필요합니다. `diary login`으로 로그인해 주세요."
	case errors.Is(err, domain.ErrEmptyContent):
		return "일기 내용을 입력해 주세요."
	case errors.Is(err, domain.ErrFutureDate):
		return "미래 날짜에는 일기를 쓸 수 없어요."
	case errors.Is(err, domain.ErrNotFound):
		return "일기를 찾을 수 없습니다."
	case errors.Is(err, domain.ErrAlreadyExists):
		return "이미 가입된 이메일입니다."
	case errors.Is(err, domain.ErrConfirmationRequired):
		return "삭제하려면 확인이 필요합니다. --yes 를 붙여 다시 실행해 주세요."
	case errors.Is(err, domain.ErrAnalysis):
		return "피드백을 받지 못했어요. 잠시 후 다시 시도해 주세요."
	case errors.Is(err, domain.ErrRateLimited):
		return "요청이 너무 많아요. 잠시 후 다시 시도해 주세요."
	case errors.As(err, &verr):
		msgs := make([]string, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
		}
		return "입력을 확인해 주세요. " + strings.Join(msgs, "; ")
	default:
		return err.Error()
	}
}

func (a *App) today() civil.Date {
	return domain.Today(a.now(), a.loc)
}

// parseDay accepts YYYY-MM-DD, "today" and "yesterday".
func (a *App) parseDay(raw string) (civil.Date, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today", "오늘":
		return a.today(), nil
	case "yesterday", "어제":
		return a.today().AddDays(-1), nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
