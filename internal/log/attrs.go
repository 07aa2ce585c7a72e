package log

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

func State[S any](s S) slog.Attr {
	return slog.String("state", fmt.Sprint(s))
}

func States[S any](key string, states []S) slog.Attr {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = fmt.Sprint(s)
	}
	return slog.Any(key, names)
}

func Event[E any](e E) slog.Attr {
	return slog.String("event", fmt.Sprint(e))
}

func RunID(id uuid.UUID) slog.Attr {
	return slog.String("run_id", id.String())
}

func Definition(id, fingerprint string) slog.Attr {
	return slog.Group("definition",
		slog.String("id", id),
		slog.String("fingerprint", fingerprint))
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}
