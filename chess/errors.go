package chess

import "errors"

var (
	// ErrMalformedSquare reports notation that does not name a board square.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrIllegalMove reports a well-formed move that is not in the legal-move
	// set of the position it was played against.
	ErrIllegalMove = errors.New("illegal move")
)
