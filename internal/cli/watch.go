package cli

import (
	"log/slog"

	"github.com/heartmarshall/emotion-diary/internal/session"
)

// WatchSession logs session changes until the returned stop func is called.
func WatchSession(gate *session.Gatekeeper, logger *slog.Logger) (stop func()) {
	events, cancel := gate.Subscribe()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for e := range events {
			attrs := []any{slog.String("event", e.Type.String())}
			if e.Session != nil {
				attrs = append(attrs, slog.String("email", e.Session.Email))
			}
			logger.Debug("session changed", attrs...)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
