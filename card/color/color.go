package color

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// All lists the playable colors in deck order.
var All = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

// Disable turns off ANSI escapes, e.g. for piped output and tests.
func Disable() {
	color.NoColor = true
}

func ByName(name string) (Color, error) {
	for _, c := range All {
		if c.Name() == strings.ToLower(strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("invalid color '%s'", name)
}

func Random(rng *rand.Rand) Color {
	return All[rng.Intn(len(All))]
}
