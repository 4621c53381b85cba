package app

import "errors"

// The three failures a lifecycle can surface. All of them are fatal for
// the current run; nothing is retried internally.
var (
	// ErrWindowCreation reports that the windowing system could not
	// produce a window.
	ErrWindowCreation = errors.New("create window")

	// ErrBackendInit reports that the rendering backend refused to start.
	ErrBackendInit = errors.New("initialize rendering backend")

	// ErrUnsupportedPlatform reports a native handle no backend mapping
	// exists for. The process cannot render on this windowing system.
	ErrUnsupportedPlatform = errors.New("unsupported windowing platform")
)
