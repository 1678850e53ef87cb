// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for pipeline stage boundaries
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... load the document ...
//	observability.Pipeline().OnLoadComplete(ctx, path, cells, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	// Load events. The cell count is the raw matrix size before the
	// border transform.
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, cells int, duration time.Duration, err error)

	// Build events
	OnBuildStart(ctx context.Context, regions int)
	OnBuildComplete(ctx context.Context, regions int, duration time.Duration, err error)

	// Encode events
	OnEncodeStart(ctx context.Context, formats []string)
	OnEncodeComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// ArtifactHooks receives events about individual encoded artifacts.
type ArtifactHooks interface {
	// OnArtifact records one encoded artifact and its size in bytes.
	OnArtifact(ctx context.Context, format string, size int)

	// OnArtifactWritten records an artifact persisted to disk.
	OnArtifactWritten(ctx context.Context, format, path string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnBuildStart(context.Context, int)                                 {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, time.Duration, error)        {}
func (NoopPipelineHooks) OnEncodeStart(context.Context, []string)                           {}
func (NoopPipelineHooks) OnEncodeComplete(context.Context, []string, time.Duration, error)  {}

// NoopArtifactHooks is a no-op implementation of ArtifactHooks.
type NoopArtifactHooks struct{}

func (NoopArtifactHooks) OnArtifact(context.Context, string, int)                {}
func (NoopArtifactHooks) OnArtifactWritten(context.Context, string, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	artifactHooks ArtifactHooks = NoopArtifactHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetArtifactHooks registers custom artifact hooks.
// This should be called once at application startup before any pipeline operations.
func SetArtifactHooks(h ArtifactHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		artifactHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Artifact returns the registered artifact hooks.
func Artifact() ArtifactHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return artifactHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	artifactHooks = NoopArtifactHooks{}
}
