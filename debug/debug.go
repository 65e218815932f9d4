package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Split    bool
	Sliders  bool
	Residual bool
	Parse    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Split = boolEnv("SYD_DEBUG_SPLIT")
	d.Sliders = boolEnv("SYD_DEBUG_SLIDERS")
	d.Residual = boolEnv("SYD_DEBUG_RESIDUAL")
	d.Parse = boolEnv("SYD_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Split() bool {
	return d.Split
}
func Sliders() bool {
	return d.Sliders
}
func Residual() bool {
	return d.Residual
}
func Parse() bool {
	return d.Parse
}
