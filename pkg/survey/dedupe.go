package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"
)

// DefaultDedupeKey is the field the maintenance command deduplicates on.
const DefaultDedupeKey = FieldFeatureID

// BackupTimeFormat is the timestamp layout appended to backup file names.
const BackupTimeFormat = "20060102150405"

// DedupeResult reports what a dedupe pass did.
type DedupeResult struct {
	Original   int      // Records in the input
	Kept       int      // Records written back
	Duplicates []string // Key values that were dropped as duplicates, in order
	MissingKey int      // Records dropped for lacking the key
	BackupPath string   // Set by DedupeFile
}

// Removed is the number of records not written back.
func (r DedupeResult) Removed() int {
	return r.Original - r.Kept
}

// DedupeRaw keeps the first record for each value of key. The key is looked
// up as given, lower-cased, and capitalized; values are compared as trimmed
// text. Records without the key are skipped. Records keep their original
// bytes, so field order is preserved.
func DedupeRaw(items []json.RawMessage, key string) ([]json.RawMessage, DedupeResult) {
	result := DedupeResult{Original: len(items)}
	seen := make(map[string]bool, len(items))
	kept := make([]json.RawMessage, 0, len(items))

	for _, item := range items {
		value, ok := dedupeKeyValue(item, key)
		if !ok {
			result.MissingKey++
			continue
		}
		if seen[value] {
			result.Duplicates = append(result.Duplicates, value)
			continue
		}
		seen[value] = true
		kept = append(kept, item)
	}

	result.Kept = len(kept)
	return kept, result
}

// DedupeFile deduplicates the JSON array stored at path in place.
// The file must hold a JSON array; otherwise nothing is written. A
// timestamped backup of the original is written before the file is replaced.
func DedupeFile(path, key string, now time.Time) (DedupeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DedupeResult{}, errors.Wrapf(err, "read %s", path)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		if err != nil && !isTypeError(err) {
			return DedupeResult{}, errors.Wrapf(err, "parse %s", path)
		}
		return DedupeResult{}, errors.Wrapf(ErrNotAList, "%s", path)
	}

	backup := BackupPath(path, now)
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return DedupeResult{}, errors.Wrapf(err, "write backup %s", backup)
	}

	kept, result := DedupeRaw(items, key)
	result.BackupPath = backup

	out, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return result, errors.Wrap(err, "encode deduplicated records")
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return result, errors.Wrapf(err, "write %s", path)
	}
	return result, nil
}

// BackupPath returns the backup file name for path at time now.
func BackupPath(path string, now time.Time) string {
	return fmt.Sprintf("%s.bak.%s", path, now.Format(BackupTimeFormat))
}

func dedupeKeyValue(item json.RawMessage, key string) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(item))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return "", false
	}

	for _, candidate := range []string{key, strings.ToLower(key), capitalize(key)} {
		v, ok := obj[candidate]
		if !ok || v == nil {
			continue
		}
		if b, isBool := v.(bool); isBool && !b {
			continue
		}
		return strings.TrimSpace(keyText(v)), true
	}
	return "", false
}

func keyText(v any) string {
	if s, ok := scalarString(v); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
