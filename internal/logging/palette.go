package logging

import (
	"math/rand"

	"github.com/fatih/color"
)

// Fixed palette for client labels, so each connection's log lines are
// visually distinct in the console.
var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgWhite),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiWhite),
}

// Color is an index into the palette.
type Color int

func RandomColor() Color {
	return Color(rand.Intn(len(palette)))
}

// Label renders a colored "client N" tag for log lines.
func (c Color) Label(clientID uint64) string {
	return palette[c].Sprintf("client %d", clientID)
}
