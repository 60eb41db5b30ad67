// Package storage persists captured link sets locally. One file per capture
// run; filenames embed a slug of the listing URL path and a timestamp so runs
// never overwrite each other.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Format selects the on-disk representation of a capture.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatJSONL:
		return FormatJSONL, nil
	}
	return "", fmt.Errorf("invalid storage format %q: supported formats are csv, json, jsonl", s)
}

// header of the CSV (and field name of the JSON/JSONL) output.
const linkField = "match_link"

// LinkWriter writes one output file per (league, season) capture under dir.
type LinkWriter struct {
	dir    string
	logger *log.Logger
}

// NewLinkWriter creates the output directory if needed.
func NewLinkWriter(dir string, logger *log.Logger) (*LinkWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &LinkWriter{dir: dir, logger: logger}, nil
}

// Save writes the deduplicated, lexicographically sorted link set for one
// capture run. An empty set writes nothing and returns an empty path. The
// returned path is the file actually written.
func (w *LinkWriter) Save(baseURL string, links []string, format Format) (string, error) {
	sorted := dedupeSorted(links)
	if len(sorted) == 0 {
		w.logger.Warn("no links collected, skipping write", "url", baseURL)
		return "", nil
	}

	name := fmt.Sprintf("%s_%s.%s", Slug(baseURL), time.Now().Format("20060102_150405"), format)
	path := filepath.Join(w.dir, name)

	var err error
	switch format {
	case FormatCSV:
		err = writeCSV(path, sorted)
	case FormatJSON:
		err = writeJSON(path, sorted)
	case FormatJSONL:
		err = writeJSONL(path, sorted)
	default:
		err = fmt.Errorf("invalid storage format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("save %d links to %s: %w", len(sorted), path, err)
	}

	w.logger.Info("saved captured links", "count", len(sorted), "path", path)
	return path, nil
}

// Slug derives a filesystem-safe identifier from a URL's path.
func Slug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "links"
	}
	s := strings.Trim(u.Path, "/")
	if s == "" {
		return "links"
	}
	s = strings.ReplaceAll(s, "/", "_")
	return strings.ReplaceAll(s, " ", "-")
}

func dedupeSorted(links []string) []string {
	seen := make(map[string]struct{}, len(links))
	out := make([]string, 0, len(links))
	for _, l := range links {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func writeCSV(path string, links []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if err := cw.Write([]string{linkField}); err != nil {
		return err
	}
	for _, link := range links {
		if err := cw.Write([]string{link}); err != nil {
			return err
		}
	}
	return cw.Error()
}

func writeJSON(path string, links []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records(links))
}

func writeJSONL(path string, links []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, rec := range records(links) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func records(links []string) []map[string]string {
	out := make([]map[string]string, len(links))
	for i, l := range links {
		out[i] = map[string]string{linkField: l}
	}
	return out
}
