package remap

import "errors"

var (
	// ErrDecode marks input that is not a well-formed image stream.
	ErrDecode = errors.New("image decode failed")
	// ErrEncode marks a failure writing the transformed image.
	ErrEncode = errors.New("image encode failed")
)
