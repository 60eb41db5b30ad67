package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingURL = "https://www.oddsportal.com/football/england/premier-league-2014-2015/results/"

func newTestWriter(t *testing.T) *LinkWriter {
	t.Helper()
	w, err := NewLinkWriter(t.TempDir(), log.New(os.Stderr))
	require.NoError(t, err)
	return w
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"csv", "CSV", " json ", "jsonl"} {
		f, err := ParseFormat(s)
		assert.NoError(t, err)
		assert.NotEmpty(t, f)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestSaveCSVSortedDeduped(t *testing.T) {
	w := newTestWriter(t)

	links := []string{
		"https://www.oddsportal.com/football/england/premier-league/b-vs-a/xyz/",
		"https://www.oddsportal.com/football/england/premier-league/a-vs-b/abc/",
		"https://www.oddsportal.com/football/england/premier-league/b-vs-a/xyz/",
	}

	path, err := w.Save(listingURL, links, FormatCSV)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"match_link"}, rows[0])
	assert.Equal(t, "https://www.oddsportal.com/football/england/premier-league/a-vs-b/abc/", rows[1][0])
	assert.Equal(t, "https://www.oddsportal.com/football/england/premier-league/b-vs-a/xyz/", rows[2][0])
}

func TestSaveFilenameSlugAndTimestamp(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.Save(listingURL, []string{"https://example.com/a/b/c/d"}, FormatCSV)
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.Regexp(t,
		regexp.MustCompile(`^football_england_premier-league-2014-2015_results_\d{8}_\d{6}\.csv$`),
		name)
}

func TestSaveEmptySetWritesNothing(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.Save(listingURL, nil, FormatCSV)
	require.NoError(t, err)
	assert.Empty(t, path)

	entries, err := os.ReadDir(w.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveJSON(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.Save(listingURL, []string{"https://example.com/a/b/c/d"}, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "https://example.com/a/b/c/d", records[0]["match_link"])
}

func TestSaveJSONL(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.Save(listingURL, []string{
		"https://example.com/a/b/c/d",
		"https://example.com/a/b/c/e",
	}, FormatJSONL)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var rec map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.NotEmpty(t, rec["match_link"])
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "links", Slug("https://www.oddsportal.com/"))
	assert.Equal(t, "a_b_c", Slug("https://x.test/a/b/c/"))
}
