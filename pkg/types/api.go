package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat    ErrKind = iota // malformed binary container (bad counts/offsets/tags)
	ErrKindStructure                // opcode/terminator/count violation in the property stream
	ErrKindNotFound                 // type lookup miss (name, short name, or hash)
	ErrKindExhausted                // cursor or entity list ran out mid-structure
	ErrKindState                    // operation invalid for the current lifecycle phase
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindStructure:
		return "structure"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindExhausted:
		return "exhausted"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned (wrapped) by implementations.
var (
	// ErrTruncated indicates a binary record ended before its declared size.
	ErrTruncated = &Error{Kind: ErrKindFormat, Msg: "truncated data"}
	// ErrMalformedStream indicates the instruction stream violates the
	// object grammar (missing/unexpected opcode, terminator, or count).
	ErrMalformedStream = &Error{Kind: ErrKindStructure, Msg: "malformed instruction stream"}
	// ErrTypeNotFound indicates a hash or short-name lookup missed the registry.
	ErrTypeNotFound = &Error{Kind: ErrKindNotFound, Msg: "type not found"}
	// ErrStreamExhausted indicates the cursor or the entity list ran out
	// in the middle of a structure.
	ErrStreamExhausted = &Error{Kind: ErrKindExhausted, Msg: "stream exhausted"}
	// ErrDuplicateType indicates a registration collided on a type name.
	ErrDuplicateType = &Error{Kind: ErrKindState, Msg: "duplicate type name"}
	// ErrSealed indicates a mutation was attempted on a linked registry.
	ErrSealed = &Error{Kind: ErrKindState, Msg: "registry is sealed"}
	// ErrNotLinked indicates an operation that requires LinkTypes to have run.
	ErrNotLinked = &Error{Kind: ErrKindState, Msg: "registry is not linked"}
)
