package icons

// Nerd Font icons for lazysurvey UI
// These require a Nerd Font to display correctly
// See: https://www.nerdfonts.com/cheat-sheet

var enabled = true

// IsEnabled returns whether icons are enabled
func IsEnabled() bool {
	return enabled
}

// SetEnabled enables or disables icons globally
func SetEnabled(e bool) {
	enabled = e
	if !e {
		disableAllIcons()
	}
}

var (
	// Panel title icons
	APP_ICON      = "\U000f0a7f" // 󰩿 (pillar)
	RECORDS_ICON  = "\U000f0279" // 󰉹 (format-list-bulleted)
	DETAILS_ICON  = "\U000f0219" // 󰈙 (file-document)
	PHOTO_ICON    = "\U000f0100" // 󰄀 (camera)
	COMMAND_ICON  = "\U000f018d" // 󰆍 (console)
	KEYBOARD_ICON = "\U000f030c" // 󰌌 (keyboard)
	LOCK_ICON     = "\U000f033e" // 󰌾 (lock)

	// Record list icons
	SHEET_ICON = "\U000f0219" // 󰈙
	LINK_ICON  = "\U000f0337" // 󰌷 (link)

	// Status icons
	LOADING = "\U000f0772" // 󰝲 (loading)
	ERROR   = "\U000f0159" // 󰅙 (close-circle)
	SUCCESS = "\U000f0134" // 󰄴 (check-circle)
	WARNING = "\U000f0026" // 󰀦 (alert)
)

// disableAllIcons sets all icons to empty strings for graceful fallback
func disableAllIcons() {
	APP_ICON = ""
	RECORDS_ICON = ""
	DETAILS_ICON = ""
	PHOTO_ICON = ""
	COMMAND_ICON = ""
	KEYBOARD_ICON = ""
	LOCK_ICON = ""
	SHEET_ICON = ""
	LINK_ICON = ""
	LOADING = "…"
	ERROR = "✗"
	SUCCESS = "✓"
	WARNING = "!"
}

// PatchForNerdFontsV2 updates icons for Nerd Fonts v2 compatibility
func PatchForNerdFontsV2() {
	APP_ICON = "\uf19c"
	PHOTO_ICON = "\uf030"
	SHEET_ICON = "\uf15c"
	LOCK_ICON = "\uf023"
}
