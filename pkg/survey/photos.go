package survey

import "fmt"

// PhotoURL resolves a photo filename against the configured base URL.
// The base is prefixed as-is; nothing checks that the photo exists.
func PhotoURL(base, filename string) string {
	return base + filename
}

// PhotoCaption is the caption shown for photo index (0-based) of a sheet.
func PhotoCaption(sheet string, index int, filename string) string {
	return fmt.Sprintf("Photo %d of sheet %s - %s", index+1, sheet, filename)
}
