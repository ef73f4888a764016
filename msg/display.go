package msg

import (
	"fmt"
)

func Sprintfln(format string, args ...interface{}) string {
	return Sprintln(fmt.Sprintf(format, args...))
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}
