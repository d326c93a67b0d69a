package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in code generation the error occurred
type Phase string

const (
	PhaseSelect Phase = "select" // call-site instruction selection
	PhaseEmit   Phase = "emit"   // instruction encoding
	PhaseVerify Phase = "verify" // stack depth verification
	PhaseLoad   Phase = "load"   // member catalog loading
	PhaseParse  Phase = "parse"  // descriptor parsing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindInvalidState    Kind = "invalid_state"
	KindInvalidData     Kind = "invalid_data"
	KindInvalidInput    Kind = "invalid_input"
	KindNotFound        Kind = "not_found"
	KindStackUnderflow  Kind = "stack_underflow"
	KindStackOverflow   Kind = "stack_overflow"
	KindUnsupported     Kind = "unsupported"
)

// Sentinels for errors.Is checks that only care about the kind.
var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrInvalidState    = &Error{Kind: KindInvalidState}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrStackUnderflow  = &Error{Kind: KindStackUnderflow}
	ErrStackOverflow   = &Error{Kind: KindStackOverflow}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Member string // owner.name+descriptor of the callable member involved
	Target string // internal name of the requested target type
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Member != "" {
		b.WriteString(" at ")
		b.WriteString(e.Member)
	}

	if e.Target != "" {
		b.WriteString(" on ")
		b.WriteString(e.Target)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Member sets the callable member description
func (b *Builder) Member(m string) *Builder {
	b.err.Member = m
	return b
}

// Target sets the requested target type name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// Convenience constructors for common error patterns

// InvalidState creates an error for an operation that contradicts the member's nature
func InvalidState(phase Phase, member, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidState,
		Member: member,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// StackUnderflow creates an error for a stack depth that would go negative
func StackUnderflow(depth, impact int) *Error {
	return &Error{
		Phase:  PhaseVerify,
		Kind:   KindStackUnderflow,
		Detail: fmt.Sprintf("depth %d cannot absorb impact %d", depth, impact),
		Value:  depth + impact,
	}
}

// StackOverflow creates an error for a peak depth above the declared maximum
func StackOverflow(peak, limit int) *Error {
	return &Error{
		Phase:  PhaseVerify,
		Kind:   KindStackOverflow,
		Detail: fmt.Sprintf("peak depth %d exceeds max stack %d", peak, limit),
		Value:  peak,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
