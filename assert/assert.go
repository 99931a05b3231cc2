package assert

import "fmt"

// T panics with the formatted message when check is false.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	if len(args) == 0 {
		panic("Assert failed: " + msg)
	}

	panic("Assert failed: " + fmt.Sprintf(msg, args...))
}
