package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("JP_DEBUG_PATCH")
	d.Diff = boolEnv("JP_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
