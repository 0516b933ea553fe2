package geometry

import "fmt"

// Kind classifies a geometry failure.
type Kind int

const (
	// InvalidArgument: an argument is out of range or malformed.
	InvalidArgument Kind = iota + 1
	// UndefinedOperation: the operands cannot be combined.
	UndefinedOperation
	// GeometricDegeneracy: the inputs have no unique geometric answer.
	GeometricDegeneracy
)

var kindLabels = [...]string{"", "invalid argument", "undefined operation", "geometric degeneracy"}

func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindLabels) {
		return "unknown"
	}
	return kindLabels[k]
}

// Error is returned by every fallible operation in this package. Two
// errors match under errors.Is when their kinds are equal, so the
// sentinels below can be used to test for a class of failure.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Msg
	}
	return e.Op + ": " + e.Msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidArgument    = &Error{Kind: InvalidArgument, Msg: "invalid argument"}
	ErrUndefinedOperation = &Error{Kind: UndefinedOperation, Msg: "undefined operation"}
	ErrParallel           = &Error{Kind: GeometricDegeneracy, Msg: "lines are parallel"}
)

func errorf(kind Kind, op, format string, a ...interface{}) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, a...)}
}
