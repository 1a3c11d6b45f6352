package survey

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotAList is returned when the backing document is not a JSON array.
var ErrNotAList = errors.New("document must be an array of feature objects")

// Store is the ordered, deduplicated set of records loaded at startup.
// It is never mutated after Load returns.
type Store struct {
	source  string
	records []Record
	dropped int
}

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	client *http.Client
}

// WithHTTPClient sets the client used for http(s) sources.
func WithHTTPClient(c *http.Client) LoadOption {
	return func(o *loadOptions) {
		o.client = c
	}
}

// Load reads the feature document from a file path or an http(s) URL and
// deduplicates it by sheet. One attempt is made; there are no retries.
func Load(ctx context.Context, source string, opts ...LoadOption) (*Store, error) {
	o := loadOptions{client: http.DefaultClient}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := readSource(ctx, source, o.client)
	if err != nil {
		return nil, err
	}

	records, err := ParseRecords(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", source)
	}

	unique := DedupeBySheet(records)
	return &Store{
		source:  source,
		records: unique,
		dropped: len(records) - len(unique),
	}, nil
}

// NewStore builds a store from already parsed records, applying the same
// sheet deduplication as Load.
func NewStore(source string, records []Record) *Store {
	unique := DedupeBySheet(records)
	return &Store{
		source:  source,
		records: unique,
		dropped: len(records) - len(unique),
	}
}

// Records returns the stored records. Callers must not modify the slice.
func (s *Store) Records() []Record {
	if s == nil {
		return nil
	}
	return s.records
}

// Len returns the number of unique records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// Dropped returns how many records were discarded as duplicates or for
// lacking a sheet.
func (s *Store) Dropped() int {
	if s == nil {
		return 0
	}
	return s.dropped
}

// Source returns where the records were loaded from.
func (s *Store) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// ParseRecords decodes a JSON array of feature objects.
// Elements that are not objects are skipped.
func ParseRecords(data []byte) ([]Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotAList
		}
		return nil, errors.Wrap(err, "decode document")
	}
	if items == nil {
		return nil, ErrNotAList
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := ParseRecord(item)
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// DedupeBySheet keeps the first record of each sheet and drops records
// without a sheet. Order is preserved.
func DedupeBySheet(records []Record) []Record {
	seen := make(map[string]bool, len(records))
	unique := make([]Record, 0, len(records))
	for _, rec := range records {
		sheet := rec.Sheet()
		if sheet == "" || seen[sheet] {
			continue
		}
		seen[sheet] = true
		unique = append(unique, rec)
	}
	return unique
}

func readSource(ctx context.Context, source string, client *http.Client) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetch(ctx, source, client)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", source)
	}
	return data, nil
}

func fetch(ctx context.Context, url string, client *http.Client) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", url)
	}
	return body, nil
}
