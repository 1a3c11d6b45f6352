package gui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/marjoballabani/lazysurvey/pkg/survey"
)

// copyJSONAction copies the selected record to the clipboard
func (g *Gui) copyJSONAction() error {
	data, label, err := g.getRecordToCopy()
	if err != nil {
		g.logCommand("copy", err.Error(), "error")
		return nil
	}

	// Copy to clipboard using platform-specific command
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		cmd = exec.Command("xclip", "-selection", "clipboard")
	default:
		g.logCommand("copy", "Clipboard not supported on this platform", "error")
		return nil
	}

	cmd.Stdin = strings.NewReader(data)
	if err := cmd.Run(); err != nil {
		g.logger.Warn("copy to clipboard", zap.Error(err))
		g.logCommand("copy", fmt.Sprintf("Failed to copy: %v", err), "error")
		return nil
	}

	g.logCommand("copy", fmt.Sprintf("Copied %s to clipboard", label), "success")
	return nil
}

// saveJSONAction saves the selected record to ~/Downloads
func (g *Gui) saveJSONAction() error {
	data, label, err := g.getRecordToCopy()
	if err != nil {
		g.logCommand("save", err.Error(), "error")
		return nil
	}

	rec, _ := g.browse.selectedRecord()
	home, _ := os.UserHomeDir()
	fullPath, err := saveRecord(filepath.Join(home, "Downloads"), rec.Sheet(), data)
	if err != nil {
		g.logger.Warn("save record", zap.Error(err))
		g.logCommand("save", fmt.Sprintf("Failed to save: %v", err), "error")
		return nil
	}

	g.logger.Info("record saved", zap.String("sheet", rec.Sheet()), zap.String("path", fullPath))
	g.logCommand("save", fmt.Sprintf("Saved %s to %s", label, fullPath), "success")
	return nil
}

// saveRecord writes data as sheet-<id>.json in dir and returns the path.
func saveRecord(dir, sheet, data string) (string, error) {
	filename := fmt.Sprintf("sheet-%s.json", strings.ReplaceAll(sheet, string(filepath.Separator), "_"))
	fullPath := filepath.Join(dir, filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "create download directory")
	}
	if err := os.WriteFile(fullPath, []byte(data), 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", fullPath)
	}
	return fullPath, nil
}

// getRecordToCopy returns the JSON to copy/save and a label for it.
// If a jq filter is active on details, returns the filtered result.
func (g *Gui) getRecordToCopy() (string, string, error) {
	rec, ok := g.browse.selectedRecord()
	if !ok {
		return "", "", errors.New("No record selected")
	}
	label := "sheet " + rec.Sheet()

	if g.currentColumn == "details" {
		if filter := g.getDetailsFilter(); strings.HasPrefix(filter, ".") {
			if out, ok := jqExport(filter, rec); ok {
				return out, fmt.Sprintf("%s (jq: %s)", label, filter), nil
			}
		}
	}

	pretty, err := rec.Pretty()
	if err != nil {
		return "", "", err
	}
	return pretty, label, nil
}

// jqExport runs a jq filter for export. A single result is exported as is,
// several as a JSON array.
func jqExport(filter string, rec survey.Record) (string, bool) {
	results, err := runJq(filter, rec.Data())
	if err != nil || len(results) == 0 {
		return "", false
	}
	if len(results) == 1 {
		return results[0], true
	}
	raw := make([]json.RawMessage, len(results))
	for i, r := range results {
		raw[i] = json.RawMessage(r)
	}
	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", false
	}
	return string(out), true
}

// openExternal opens a URL with the platform's default handler.
func openExternal(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return errors.Errorf("opening photos not supported on %s", runtime.GOOS)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "open %s", url)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// openPhotoAction opens the photo on display (lightbox) or under the
// Photos panel cursor. A failure marks the photo unavailable.
func (g *Gui) openPhotoAction() error {
	name, ok := g.lightbox.Current()
	if !ok {
		name, ok = g.selectedPhoto()
	}
	if !ok {
		return nil
	}

	url := survey.PhotoURL(g.config.Photos.BaseURL, name)
	if g.config.Photos.BaseURL == "" {
		g.logger.Debug("photo base URL not configured", zap.String("photo", name))
	}
	if err := g.openURL(url); err != nil {
		g.photoErrors[name] = true
		g.logger.Warn("open photo", zap.String("url", url), zap.Error(err))
		g.logCommand("photo", fmt.Sprintf("Could not open %s", name), "error")
		return g.Layout(g.g)
	}
	delete(g.photoErrors, name)
	g.logCommand("photo", fmt.Sprintf("Opened %s", url), "success")
	return nil
}
