package icons

import "testing"

func TestSetEnabled(t *testing.T) {
	// Save original state
	originalEnabled := enabled

	// Test enabling
	SetEnabled(true)
	if !IsEnabled() {
		t.Error("IsEnabled() should be true after SetEnabled(true)")
	}

	// Test disabling
	SetEnabled(false)
	if IsEnabled() {
		t.Error("IsEnabled() should be false after SetEnabled(false)")
	}

	// Verify icons are cleared when disabled
	if RECORDS_ICON != "" {
		t.Error("RECORDS_ICON should be empty when disabled")
	}
	if PHOTO_ICON != "" {
		t.Error("PHOTO_ICON should be empty when disabled")
	}

	// Verify fallback icons are set
	if WARNING != "!" {
		t.Errorf("WARNING should be '!' when disabled, got %q", WARNING)
	}
	if ERROR != "✗" {
		t.Errorf("ERROR should be '✗' when disabled, got %q", ERROR)
	}
	if LOADING != "…" {
		t.Errorf("LOADING should be '…' when disabled, got %q", LOADING)
	}

	// Restore original state
	enabled = originalEnabled
}

func TestPatchForNerdFontsV2(t *testing.T) {
	// Save original values
	origPhoto := PHOTO_ICON
	origSheet := SHEET_ICON

	PatchForNerdFontsV2()

	// Verify v2 icons are set
	if PHOTO_ICON != "\uf030" {
		t.Errorf("PHOTO_ICON should be patched for v2, got %q", PHOTO_ICON)
	}
	if SHEET_ICON != "\uf15c" {
		t.Errorf("SHEET_ICON should be patched for v2, got %q", SHEET_ICON)
	}

	// Restore
	PHOTO_ICON = origPhoto
	SHEET_ICON = origSheet
}
