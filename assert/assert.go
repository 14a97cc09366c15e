package assert

import "github.com/oomph-ac/jumpsim/oerror"

// IsTrue panics with a configuration error if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

// Precondition panics with a precondition error if ok is false.
func Precondition(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.NewPrecondition(message, args...))
	}
}
