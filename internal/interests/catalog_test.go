package interests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	c := NewCatalog(DefaultEntries())

	want := []string{"Intro to ML", "Supervised Learning", "Model Deployment"}
	assert.Equal(t, want, c.Lookup("ml"))
	assert.Equal(t, want, c.Lookup("ML"))
	assert.Nil(t, c.Lookup("knitting"))
}

func TestAllTitles_KeepsOrderAndDuplicates(t *testing.T) {
	c := NewCatalog([]Entry{
		{Keyword: "A", Titles: []string{"x", "y"}},
		{Keyword: "b", Titles: []string{"y", "z"}},
	})

	assert.Equal(t, []string{"x", "y", "y", "z"}, c.AllTitles())
	assert.Equal(t, []string{"a", "b"}, c.Keywords())
}

func TestNewCatalog_RepeatedKeyword(t *testing.T) {
	c := NewCatalog([]Entry{
		{Keyword: "ml", Titles: []string{"old"}},
		{Keyword: "go", Titles: []string{"Go"}},
		{Keyword: "ML", Titles: []string{"new"}},
	})

	assert.Equal(t, []string{"ml", "go"}, c.Keywords())
	assert.Equal(t, []string{"new"}, c.Lookup("ml"))
}

func TestEmptyCatalog(t *testing.T) {
	c := NewCatalog(nil)
	assert.Empty(t, c.AllTitles())
}
