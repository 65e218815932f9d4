package libdiff

import (
	"os"
	"strconv"
)

const (
	// Lists with fewer descendants than this are grouped with their
	// neighbors rather than matched as whole subtrees, so that small
	// incidental matches don't fragment a local edit.
	defaultTinyListThreshold = 10

	// Minimum count of content-unique common descendants for a list
	// pair to be split off as its own mostly-unchanged section.
	mostlyUnchangedMinCommon = 4
)

var tinyListThreshold = defaultTinyListThreshold

func init() {
	v := os.Getenv("SYD_TINY_LIST_THRESHOLD")
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		// malformed overrides fall back to the default
		return
	}
	tinyListThreshold = n
}

// SetTinyListThreshold overrides the tiny-list threshold and returns
// the previous value. Intended for start-up configuration and test
// tuning; it is not safe to call during a diff.
func SetTinyListThreshold(n int) int {
	prev := tinyListThreshold
	if n >= 1 {
		tinyListThreshold = n
	} else {
		tinyListThreshold = defaultTinyListThreshold
	}
	return prev
}
