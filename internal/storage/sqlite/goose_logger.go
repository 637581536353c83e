package sqlite

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var exit = os.Exit

// gooseLogger routes migration output through slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level and terminates the process, like log.Fatalf.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	exit(1)
}
