package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/cali/internal/logging"
)

// gooseLogger routes goose output to debug lines so migrations never write
// to the command's stdout.
type gooseLogger struct {
	l logging.Logger
}

func newGooseLogger(l logging.Logger) *gooseLogger {
	if l == nil {
		l = logging.Discard()
	}
	return &gooseLogger{l: l.With("component", "migrations")}
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.l.Debug(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
