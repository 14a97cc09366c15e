package oerror

import "fmt"

// Kind classifies a SimError.
type Kind uint8

const (
	// KindConfiguration is a mistake in scenario setup, such as an unknown input key.
	KindConfiguration Kind = iota
	// KindPrecondition is a state the movement code has no defined behaviour for.
	KindPrecondition
	// KindHook is a panic raised by handler code while a job was running.
	KindHook
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindPrecondition:
		return "precondition"
	case KindHook:
		return "hook"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// SimError is the error raised by the simulator. Kind tells a caller whether the scenario, the movement
// state or handler code was at fault.
type SimError struct {
	Kind Kind
	Err  string
}

// New returns a configuration error with a formatted message.
func New(format string, args ...interface{}) *SimError {
	return &SimError{Kind: KindConfiguration, Err: fmt.Sprintf(format, args...)}
}

// NewPrecondition returns a precondition error with a formatted message.
func NewPrecondition(format string, args ...interface{}) *SimError {
	return &SimError{Kind: KindPrecondition, Err: fmt.Sprintf(format, args...)}
}

// NewHook returns a hook error with a formatted message.
func NewHook(format string, args ...interface{}) *SimError {
	return &SimError{Kind: KindHook, Err: fmt.Sprintf(format, args...)}
}

func (e *SimError) Error() string {
	return e.Kind.String() + " error: " + e.Err
}
