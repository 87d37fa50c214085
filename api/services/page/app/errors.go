package app

import "errors"

var (
	// ErrRender indicates the page could not be produced or written.
	ErrRender = errors.New("render error")
)
