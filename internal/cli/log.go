package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kitreport/pkg/observability"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports pipeline stage events at debug level.
type logHooks struct {
	logger *log.Logger
}

func registerLogHooks(l *log.Logger) {
	observability.SetPipelineHooks(logHooks{logger: l})
}

func (h logHooks) OnImportStart(_ context.Context, size int) {
	h.logger.Debug("import started", "bytes", size)
}

func (h logHooks) OnImportComplete(_ context.Context, sections, skipped int, d time.Duration, err error) {
	h.logger.Debug("import finished", "sections", sections, "skipped", skipped, "duration", d, "err", err)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, sections int) {
	h.logger.Debug("render started", "format", format, "sections", sections)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, pages int, d time.Duration, err error) {
	h.logger.Debug("render finished", "format", format, "pages", pages, "duration", d, "err", err)
}

func (h logHooks) OnWrite(_ context.Context, path string, size int, err error) {
	h.logger.Debug("file written", "path", path, "bytes", size, "err", err)
}
