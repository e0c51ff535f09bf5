// Package interests holds the keyword to course-title catalog of the interest service.
package interests

import "strings"

// Entry maps one lower-cased keyword to its course titles.
type Entry struct {
	Keyword string
	Titles  []string
}

// Catalog is an ordered, immutable keyword catalog.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// DefaultEntries is the built-in catalog.
func DefaultEntries() []Entry {
	return []Entry{
		{Keyword: "ml", Titles: []string{"Intro to ML", "Supervised Learning", "Model Deployment"}},
		{Keyword: "data", Titles: []string{"Data Analysis with Pandas", "SQL Fundamentals", "Data Visualization"}},
		{Keyword: "web", Titles: []string{"HTML & CSS Basics", "JavaScript Essentials", "REST APIs with Flask"}},
		{Keyword: "cloud", Titles: []string{"Cloud Fundamentals", "Docker Basics", "Kubernetes Intro"}},
	}
}

// NewCatalog lower-cases keywords. A repeated keyword replaces the earlier titles
// but keeps the earlier position.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Keyword))
		titles := append([]string(nil), e.Titles...)
		if pos, ok := c.index[key]; ok {
			c.entries[pos].Titles = titles
			continue
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, Entry{Keyword: key, Titles: titles})
	}
	return c
}

// Lookup returns the titles for keyword, matched case-insensitively.
func (c *Catalog) Lookup(keyword string) []string {
	pos, ok := c.index[strings.ToLower(keyword)]
	if !ok {
		return nil
	}
	return c.entries[pos].Titles
}

// AllTitles concatenates every entry's titles in definition order, duplicates kept.
func (c *Catalog) AllTitles() []string {
	var out []string
	for _, e := range c.entries {
		out = append(out, e.Titles...)
	}
	return out
}

func (c *Catalog) Keywords() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Keyword
	}
	return out
}
