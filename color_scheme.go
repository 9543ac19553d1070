package execshell

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colors used to draw the shell.
type ColorScheme struct {
	Name       string `json:"name"`
	Prefix     Color  `json:"prefix"`     // prompt text
	Input      Color  `json:"input"`      // line being edited
	Completion Color  `json:"completion"` // completion candidates
	Notice     Color  `json:"notice"`     // "no completions", unhandled keys
	Error      Color  `json:"error"`      // executor failures
	Monochrome bool   `json:"monochrome"` // emit no escape sequences for color
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default color scheme with green prefix and white text
var ThemeDefault = &ColorScheme{
	Name:       "default",
	Prefix:     Color{R: 0, G: 255, B: 0, Bold: true},
	Input:      Color{R: 255, G: 255, B: 255, Bold: true},
	Completion: Color{R: 200, G: 200, B: 200},
	Notice:     Color{R: 128, G: 128, B: 128},
	Error:      Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeDark is a dark theme with light blue prefix and off-white text
var ThemeDark = &ColorScheme{
	Name:       "Dark",
	Prefix:     Color{R: 102, G: 217, B: 239, Bold: true},
	Input:      Color{R: 248, G: 248, B: 242},
	Completion: Color{R: 189, G: 147, B: 249},
	Notice:     Color{R: 98, G: 114, B: 164},
	Error:      Color{R: 255, G: 85, B: 85, Bold: true},
}

// ThemeLight is a light theme with blue prefix and dark gray text
var ThemeLight = &ColorScheme{
	Name:       "Light",
	Prefix:     Color{R: 0, G: 119, B: 187, Bold: true},
	Input:      Color{R: 36, G: 41, B: 46},
	Completion: Color{R: 88, G: 96, B: 105},
	Notice:     Color{R: 149, G: 157, B: 165},
	Error:      Color{R: 215, G: 58, B: 73, Bold: true},
}

// ThemeMonochrome draws without any color, for NO_COLOR and non-terminal output.
var ThemeMonochrome = &ColorScheme{
	Name:       "Monochrome",
	Monochrome: true,
}

// Paint returns the escape sequence that switches to c, or nothing for a
// monochrome scheme.
func (s *ColorScheme) Paint(c Color) string {
	if s.Monochrome {
		return ""
	}
	return c.ToANSI()
}

// Reset returns the ANSI reset sequence, or nothing for a monochrome scheme.
func (s *ColorScheme) Reset() string {
	if s.Monochrome {
		return ""
	}
	return "\x1b[0m"
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}
