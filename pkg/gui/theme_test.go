package gui

import (
	"strings"
	"testing"

	"github.com/jesseduffield/gocui"

	"github.com/marjoballabani/lazysurvey/pkg/config"
)

func TestParseColorAttributes(t *testing.T) {
	attr := parseColor([]string{"cyan", "bold", "underline"})
	if attr&gocui.AttrBold == 0 {
		t.Error("bold should be set")
	}
	if attr&gocui.AttrUnderline == 0 {
		t.Error("underline should be set")
	}
	if parseColor(nil) != gocui.ColorDefault {
		t.Error("empty color list should be the default color")
	}
	if parseColorValue("#zzz") != gocui.ColorDefault {
		t.Error("malformed hex should fall back to the default color")
	}
}

func TestReferenceAnsi(t *testing.T) {
	theme := NewTheme(config.ThemeConfig{ReferenceColor: []string{"#ff8800", "underline"}})
	code := theme.ReferenceAnsi()
	if !strings.HasPrefix(code, "\033[38;2;") {
		t.Errorf("expected a true color sequence, got %q", code)
	}
	if !strings.Contains(code, "\033[4m") {
		t.Errorf("expected underline in %q", code)
	}
	if strings.Contains(code, "\033[1m") {
		t.Errorf("bold was not configured, got %q", code)
	}

	plain := NewTheme(config.ThemeConfig{}).ReferenceAnsi()
	if strings.Contains(plain, "\033[4m") {
		t.Errorf("no underline expected, got %q", plain)
	}
}
