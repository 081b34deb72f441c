package footprint

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for session mutations, comparable with errors.Is().
var (
	// ErrBuiltinCategory indicates an attempt to remove a built-in
	// (non-custom) category. Built-ins can only be edited or disabled.
	ErrBuiltinCategory = constError("built-in categories cannot be removed")

	// ErrUnknownCategory indicates the id did not match any record.
	ErrUnknownCategory = constError("unknown category")

	// ErrUnknownField indicates an unrecognized field name in an update.
	ErrUnknownField = constError("unknown field")
)
