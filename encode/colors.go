package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	PathColor ColorAttr = iota
	HunkColor
	RemovedColor
	AddedColor
	ContextColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default ANSI palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	colors.Map[PathColor] = color.New(color.Bold).SprintfFunc()
	colors.Map[HunkColor] = color.CyanString
	colors.Map[RemovedColor] = color.RedString
	colors.Map[AddedColor] = color.GreenString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// NoColors returns a palette that passes text through untouched.
func NoColors() *Colors {
	return &Colors{Default: colorDefault}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
