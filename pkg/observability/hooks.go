// Package observability provides hooks for timing and tracing report runs.
//
// The pipeline emits an event when each stage starts and completes. By
// default nothing listens; a consumer registers its own implementation once
// at startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myHooks{})
//	    // ... run the pipeline
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnImportStart(ctx, len(data))
//	// ... parse kits ...
//	observability.Pipeline().OnImportComplete(ctx, sections, skipped, duration, err)
//
// The CLI registers a logging implementation in verbose mode.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the report pipeline.
type PipelineHooks interface {
	// Import events
	OnImportStart(ctx context.Context, size int)
	OnImportComplete(ctx context.Context, sections, skipped int, duration time.Duration, err error)

	// Render events, once per output format
	OnRenderStart(ctx context.Context, format string, sections int)
	OnRenderComplete(ctx context.Context, format string, pages int, duration time.Duration, err error)

	// OnWrite records an output file being written.
	OnWrite(ctx context.Context, path string, size int, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnImportStart(context.Context, int)                                  {}
func (NoopPipelineHooks) OnImportComplete(context.Context, int, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnWrite(context.Context, string, int, error)                         {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. Nil is ignored.
// Call it once at startup before running the pipeline.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op hooks.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
