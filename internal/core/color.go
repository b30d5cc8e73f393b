package core

// Color is a terminal colour: a hex string ("#F0DF60") or an ANSI 256
// code ("208"). The empty string keeps the terminal default.
type Color string

// Palette for HUD and overlays.
const (
	ColorDefault  Color = ""
	ColorRed      Color = "9"
	ColorGreen    Color = "10"
	ColorYellow   Color = "11"
	ColorBlue     Color = "12"
	ColorMagenta  Color = "13"
	ColorCyan     Color = "14"
	ColorWhite    Color = "15"
	ColorOrange   Color = "208"
	ColorGray     Color = "245"
	ColorDarkGray Color = "238"
)

// Cell is one character of the screen with its colours.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}
