package gui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jesseduffield/gocui"

	"github.com/marjoballabani/lazysurvey/pkg/config"
)

// Theme holds the parsed colors of the ui.theme config section.
type Theme struct {
	ActiveBorderColor   gocui.Attribute
	InactiveBorderColor gocui.Attribute
	FilterBorderColor   gocui.Attribute
	OptionsTextColor    gocui.Attribute
	SelectedLineBgColor gocui.Attribute
	ReferenceColor      gocui.Attribute
}

func NewTheme(cfg config.ThemeConfig) *Theme {
	return &Theme{
		ActiveBorderColor:   parseColor(cfg.ActiveBorderColor),
		InactiveBorderColor: parseColor(cfg.InactiveBorderColor),
		FilterBorderColor:   parseColor(cfg.FilterBorderColor),
		OptionsTextColor:    parseColor(cfg.OptionsTextColor),
		SelectedLineBgColor: parseColor(cfg.SelectedLineBgColor),
		ReferenceColor:      parseColor(cfg.ReferenceColor),
	}
}

var namedColors = map[string]gocui.Attribute{
	"default": gocui.ColorDefault,
	"black":   gocui.ColorBlack,
	"red":     gocui.ColorRed,
	"green":   gocui.ColorGreen,
	"yellow":  gocui.ColorYellow,
	"blue":    gocui.ColorBlue,
	"magenta": gocui.ColorMagenta,
	"cyan":    gocui.ColorCyan,
	"white":   gocui.ColorWhite,
}

var textAttributes = map[string]gocui.Attribute{
	"bold":      gocui.AttrBold,
	"underline": gocui.AttrUnderline,
	"reverse":   gocui.AttrReverse,
}

// parseColor combines a list like ["cyan", "bold"] into one attribute.
// Entries may be color names, "#rrggbb", 256-color numbers, or text
// attributes. Unknown entries are ignored.
func parseColor(colorSpec []string) gocui.Attribute {
	if len(colorSpec) == 0 {
		return gocui.ColorDefault
	}

	var attr gocui.Attribute
	for _, entry := range colorSpec {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if a, ok := textAttributes[entry]; ok {
			attr |= a
			continue
		}
		attr |= parseColorValue(entry)
	}
	return attr
}

func parseColorValue(color string) gocui.Attribute {
	if strings.HasPrefix(color, "#") {
		return parseHexColor(color)
	}
	if a, ok := namedColors[color]; ok {
		return a
	}
	if n, err := strconv.Atoi(color); err == nil && n >= 0 && n < 256 {
		return gocui.Attribute(n) | gocui.AttrIsValidColor
	}
	return gocui.ColorDefault
}

func parseHexColor(hex string) gocui.Attribute {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return gocui.ColorDefault
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gocui.ColorDefault
	}
	return gocui.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF))
}

// GetAnsiColorCode returns ANSI escape code for the active border color
func (t *Theme) GetAnsiColorCode() string {
	return attributeToAnsi(t.ActiveBorderColor)
}

// ReferenceAnsi returns the escape sequence for cross-reference links,
// including bold and underline when configured.
func (t *Theme) ReferenceAnsi() string {
	code := attributeToAnsi(t.ReferenceColor)
	if t.ReferenceColor&gocui.AttrBold != 0 {
		code += "\033[1m"
	}
	if t.ReferenceColor&gocui.AttrUnderline != 0 {
		code += "\033[4m"
	}
	return code
}

// basicAnsi is indexed by the low byte of a basic gocui color.
var basicAnsi = []string{
	"\033[36m", // default renders as cyan
	"\033[30m",
	"\033[31m",
	"\033[32m",
	"\033[33m",
	"\033[34m",
	"\033[35m",
	"\033[36m",
	"\033[37m",
}

func attributeToAnsi(attr gocui.Attribute) string {
	if attr&gocui.AttrIsValidColor != 0 {
		rgb := uint32(attr & 0xFFFFFF)
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", rgb>>16&0xFF, rgb>>8&0xFF, rgb&0xFF)
	}
	if i := int(attr & 0xFF); i < len(basicAnsi) {
		return basicAnsi[i]
	}
	return basicAnsi[0]
}
