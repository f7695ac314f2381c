package errors

// Code classifies an error for callers deciding how to react to it
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// CodeInvalidArgument marks bad caller input: unknown target names,
	// malformed roster entries, out of range levels
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeNotFound marks lookups of battles, characters, spells or counters
	// that do not exist
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists marks duplicate registrations in a catalog
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeFailedPrecondition marks operations on a battle or character that is
	// not in a state to accept them (battle over, caster dead)
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"

	// CodeCanceled marks work abandoned because its context was canceled
	CodeCanceled Code = "CANCELED"

	// CodeUnavailable marks a storage backend that could not be reached
	CodeUnavailable Code = "UNAVAILABLE"

	// CodeInternal marks configuration bugs and invariant violations
	CodeInternal Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsCallerFault reports whether the code blames the caller's input rather
// than the system
func (c Code) IsCallerFault() bool {
	switch c {
	case CodeInvalidArgument, CodeNotFound, CodeAlreadyExists, CodeFailedPrecondition:
		return true
	default:
		return false
	}
}
