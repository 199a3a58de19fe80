package charfilter

import "errors"

var (
	// ErrNoCharset indicates the locale's encoding could not be resolved to
	// any charset the registry knows, via any backend.
	ErrNoCharset = errors.New("character set not supported")

	// ErrNoPty indicates no pseudo-terminal could be allocated.
	ErrNoPty = errors.New("no pseudo-terminal available")

	// ErrChildExited indicates the shuttle loop is ending because the
	// child process died and -exitOnChild (the default) was requested.
	ErrChildExited = errors.New("child process exited")
)
