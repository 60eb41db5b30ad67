package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageNumbers(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []int
	}{
		{
			name:  "plain digits",
			texts: []string{"1", "2", "3"},
			want:  []int{1, 2, 3},
		},
		{
			name:  "non-numeric anchors ignored",
			texts: []string{"1", "Next", "»", "2", ""},
			want:  []int{1, 2},
		},
		{
			name:  "whitespace tolerated",
			texts: []string{" 4 ", "5"},
			want:  []int{4, 5},
		},
		{
			name:  "zero and negatives rejected",
			texts: []string{"0", "-1", "2"},
			want:  []int{2},
		},
		{
			name:  "nothing numeric",
			texts: []string{"Next", "Prev"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePageNumbers(tt.texts))
		})
	}
}

func TestPageRange(t *testing.T) {
	tests := []struct {
		name     string
		observed []int
		maxPages int
		want     []int
	}{
		{
			name:     "no observations defaults to single page",
			observed: nil,
			maxPages: 0,
			want:     []int{1},
		},
		{
			name:     "full range truncated by max pages",
			observed: []int{1, 2, 3, 4, 5},
			maxPages: 3,
			want:     []int{1, 2, 3},
		},
		{
			name:     "sparse observations are gap-filled",
			observed: []int{5, 1},
			maxPages: 0,
			want:     []int{1, 2, 3, 4, 5},
		},
		{
			name:     "duplicates and order do not matter",
			observed: []int{3, 1, 3, 2, 1},
			maxPages: 0,
			want:     []int{1, 2, 3},
		},
		{
			name:     "max pages larger than range is a no-op",
			observed: []int{1, 2},
			maxPages: 10,
			want:     []int{1, 2},
		},
		{
			name:     "range not anchored at one",
			observed: []int{4, 6},
			maxPages: 0,
			want:     []int{4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageRange(tt.observed, tt.maxPages))
		})
	}
}

func TestPaginationTextsFromMarkup(t *testing.T) {
	html := `
	<html><body>
		<div class="pagination">
			<a class="pagination-link" href="#/page/1">1</a>
			<a class="pagination-link" href="#/page/2">2</a>
			<a class="pagination-link" rel="next" href="#/page/2">Next</a>
		</div>
	</body></html>`

	texts := paginationTextsFromMarkup(html)
	assert.Equal(t, []int{1, 2}, PageRange(ParsePageNumbers(texts), 0))
}

func TestPaginationTextsFromMarkupEmpty(t *testing.T) {
	texts := paginationTextsFromMarkup(`<html><body><p>no pagination here</p></body></html>`)
	assert.Empty(t, texts)
	assert.Equal(t, []int{1}, PageRange(ParsePageNumbers(texts), 0))
}
