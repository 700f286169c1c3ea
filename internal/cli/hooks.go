package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bioplot/pkg/observability"
)

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = logHooks{}

func newLogHooks(l *log.Logger) logHooks {
	return logHooks{logger: l.WithPrefix("hooks")}
}

func (h logHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load start", "source", source)
}

func (h logHooks) OnLoadComplete(_ context.Context, source string, rows int, d time.Duration, err error) {
	h.complete("load", err, "source", source, "rows", rows, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, kind string) {
	h.logger.Debug("render start", "kind", kind)
}

func (h logHooks) OnRenderComplete(_ context.Context, kind string, d time.Duration, err error) {
	h.complete("render", err, "kind", kind, "duration", d)
}

func (h logHooks) OnExportStart(_ context.Context, formats []string) {
	h.logger.Debug("export start", "formats", formats)
}

func (h logHooks) OnExportComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.complete("export", err, "formats", formats, "duration", d)
}

func (h logHooks) complete(stage string, err error, kv ...any) {
	if err != nil {
		kv = append(kv, "err", err)
	}
	h.logger.Debug(stage+" complete", kv...)
}
