package code128go

import "errors"

var (
	// ErrUnencodableByte is returned when an input byte has no encoding in
	// any Code 128 character set.
	ErrUnencodableByte = errors.New("byte not encodable in any code set")

	// ErrInvalidDirective is returned when an explicit code set directive is
	// malformed, does not account for the input length, or assigns a byte to
	// a set that cannot encode it.
	ErrInvalidDirective = errors.New("invalid code set directive")

	// ErrRenderingUnavailable is returned by rendering calls when no
	// renderer has been configured.
	ErrRenderingUnavailable = errors.New("no renderer configured")
)
