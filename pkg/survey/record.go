// Package survey holds the feature-record model of the Pompeii survey dataset
// and the pure operations the viewer derives from it: loading and
// deduplicating the store, filtering, pagination and cross-reference linking.
package survey

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// Field names used by the viewer. Records may carry any other key as well.
const (
	FieldSheet                  = "SHEET"
	FieldFeatureID              = "FEATURE_ID"
	FieldRegion                 = "REGION"
	FieldInsula                 = "INSULA"
	FieldEntrance               = "ENTRANCE"
	FieldSpaceNumber            = "SPACE_NUMBER"
	FieldDescription            = "DESCRIPTION"
	FieldContiguousRelationship = "CONTIGUOUS_RELATIONSHIP"
	FieldRecorder               = "RECORDER_ID"
	FieldResearcher             = "RESEARCHER_ID"
	FieldSheetDate              = "SHEET_DATE"
	FieldSeason                 = "SEASON"
	FieldStructure              = "STRUCTURE_ID"
	FieldSheetType              = "SHEET_TYPE_ID"
	FieldFeatureType            = "FEATURE_TYPE_ID"
	FieldCategory               = "CATEGORY_ID"
	FieldSpaceType              = "SPACE_TYPE_ID"
	FieldGate                   = "GATE_ID"
	FieldUsage                  = "USAGE_ID"
	FieldNegativeFeature        = "NEGATIVE_FEATURE"
	FieldMinorityReport         = "MINORITY_REPORT"
	FieldPhotographer           = "PHOTOGRAPHER_ID"
	FieldBWRoll                 = "BW_ROLL"
	FieldColorRoll              = "COLOR_ROLL"
	FieldDigitalImage           = "DIGITAL_IMAGE"
	FieldVideographer           = "VIDEOGRAPHER_ID"
	FieldFileNumber             = "FILE_NUMBER"
	FieldTapeNumber             = "TAPE_NUMBER"
	FieldTimeCount              = "TIME_COUNT"
	FieldArtist                 = "ARTIST_ID"
	FieldVideoComments          = "VIDEO_COMMENTS"

	photosKey = "photos"
)

// Record is a single feature sheet.
type Record struct {
	Fields map[string]any  // Every key of the JSON object except photos
	Photos []string        // Photo filenames in display order
	Raw    json.RawMessage // Original object bytes, key order preserved
}

// ParseRecord decodes one JSON object into a Record.
// Numbers keep their textual form so numeric identifiers print as written.
func ParseRecord(raw json.RawMessage) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return Record{}, errors.Wrap(err, "decode record")
	}
	if obj == nil {
		return Record{}, errors.New("record is not an object")
	}

	rec := Record{
		Fields: make(map[string]any, len(obj)),
		Raw:    append(json.RawMessage(nil), raw...),
	}
	for k, v := range obj {
		if k == photosKey {
			if list, ok := v.([]any); ok {
				for _, p := range list {
					if s, ok := p.(string); ok {
						rec.Photos = append(rec.Photos, s)
					}
				}
			}
			continue
		}
		rec.Fields[k] = v
	}
	return rec, nil
}

// Field returns the scalar value of a field as text.
// Absent, null, empty, and non-scalar values report ok=false.
func (r Record) Field(name string) (string, bool) {
	v, ok := r.Fields[name]
	if !ok {
		return "", false
	}
	s, ok := scalarString(v)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Value returns the field text or "" when absent.
func (r Record) Value(name string) string {
	s, _ := r.Field(name)
	return s
}

// Sheet returns the sheet identifier.
func (r Record) Sheet() string {
	return r.Value(FieldSheet)
}

// Pretty returns the record as indented JSON in its original key order.
func (r Record) Pretty() (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Raw, "", "  "); err != nil {
		return "", errors.Wrap(err, "indent record")
	}
	return buf.String(), nil
}

// Data returns the record as a generic JSON value (fields plus photos),
// the shape jq queries run against.
func (r Record) Data() map[string]any {
	data := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		data[k] = normalizeNumbers(v)
	}
	if r.Photos != nil {
		photos := make([]any, len(r.Photos))
		for i, p := range r.Photos {
			photos[i] = p
		}
		data[photosKey] = photos
	}
	return data
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// normalizeNumbers converts json.Number into int or float64, which gojq
// understands, recursing into arrays and objects.
func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeNumbers(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeNumbers(item)
		}
		return out
	default:
		return v
	}
}
