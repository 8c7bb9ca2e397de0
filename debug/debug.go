// Package debug gates diagnostic logging on BRACE_DEBUG_* environment
// variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Compile bool
	Resolve bool
	Bind    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Compile = boolEnv("BRACE_DEBUG_COMPILE")
	d.Resolve = boolEnv("BRACE_DEBUG_RESOLVE")
	d.Bind = boolEnv("BRACE_DEBUG_BIND")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Compile() bool {
	return d.Compile
}
func Resolve() bool {
	return d.Resolve
}
func Bind() bool {
	return d.Bind
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
