package healthvalue

import "errors"

// Sentinel errors for the three failure classes of this package. Callers
// match with errors.Is; every returned error wraps exactly one of these
// with field-level context.
var (
	// ErrMalformedNativePoint marks a native point missing a required
	// field or carrying one with the wrong shape. The offending sample
	// should be dropped or quarantined by the caller.
	ErrMalformedNativePoint = errors.New("malformed native point")

	// ErrUnknownEnumCode marks a native or wire enum code with no
	// canonical match. Never silently coerced to a default, except where
	// a variant's documented policy says otherwise.
	ErrUnknownEnumCode = errors.New("unknown enum code")

	// ErrDecodeMismatch marks a wire payload field failing a type or
	// shape check during decode. No partial value is returned.
	ErrDecodeMismatch = errors.New("wire payload decode mismatch")
)
