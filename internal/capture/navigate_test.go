package capture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHash(t *testing.T) {
	assert.Equal(t, "#/page/2", pageHash(2))
	assert.Equal(t, "#/page/14", pageHash(14))
}

func TestConsentClickJSEmbedsSelectorsAndKeywords(t *testing.T) {
	js := consentClickJS()
	for _, kw := range consentKeywords {
		assert.True(t, strings.Contains(js, kw), "keyword %q missing from script", kw)
	}
	assert.Contains(t, js, "onetrust-accept-btn-handler")
}
