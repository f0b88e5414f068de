// Package debug provides env-gated diagnostics for the store. Flags are
// read once at startup from JAWADB_DEBUG_* environment variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Save     bool
	Registry bool
	Wrap     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Save = boolEnv("JAWADB_DEBUG_SAVE")
	d.Registry = boolEnv("JAWADB_DEBUG_REGISTRY")
	d.Wrap = boolEnv("JAWADB_DEBUG_WRAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Save() bool {
	return d.Save
}
func Registry() bool {
	return d.Registry
}
func Wrap() bool {
	return d.Wrap
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
