package chartview

import "errors"

var (
	// ErrDegenerate is returned when a transform is not invertible, usually
	// because a scale factor of zero crept into it.
	ErrDegenerate = errors.New("degenerate transform")

	// ErrEmptyContentRect is returned when a content rectangle without
	// positive width and height is handed to a [Viewport].
	ErrEmptyContentRect = errors.New("content rect has no area")
)
