package synthesis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"digitalmindset/models"
)

const (
	maxFallbackNiches   = 10
	maxFallbackChapters = 15
)

// ParseSource tells which decoding path produced a result.
type ParseSource int

const (
	SourceStructured ParseSource = iota
	SourceFallback
)

func (s ParseSource) String() string {
	if s == SourceFallback {
		return "fallback"
	}
	return "structured"
}

// NicheList is the decoded output of the niche stage.
type NicheList struct {
	Items  []models.Niche
	Source ParseSource
}

// TableOfContents is the decoded output of the table of contents stage.
type TableOfContents struct {
	Entries []models.TOCEntry
	Source  ParseSource
}

var listPrefix = regexp.MustCompile(`^\d+[.):-]\s*`)

// ParseNiches uses any valid JSON response as the niche list and falls back
// to the line parser only when raw is not JSON.
func ParseNiches(raw string) NicheList {
	if items, ok := DecodeNiches(raw); ok {
		return NicheList{Items: items, Source: SourceStructured}
	}
	return NicheList{Items: FallbackNiches(raw, maxFallbackNiches), Source: SourceFallback}
}

// ParseTableOfContents uses any valid JSON response as the table of contents
// and falls back to the line parser only when raw is not JSON.
func ParseTableOfContents(raw string) TableOfContents {
	if entries, ok := DecodeTableOfContents(raw); ok {
		return TableOfContents{Entries: entries, Source: SourceStructured}
	}
	return TableOfContents{Entries: FallbackTableOfContents(raw, maxFallbackChapters), Source: SourceFallback}
}

// DecodeNiches reports false only when raw is not valid JSON. It accepts an
// array of niche objects or strings, or an object whose first non-empty
// array field holds them. Valid JSON of any other shape yields no niches.
func DecodeNiches(raw string) ([]models.Niche, bool) {
	data := []byte(strings.TrimSpace(raw))
	if !json.Valid(data) {
		return nil, false
	}
	return decodeList[models.Niche](data), true
}

// DecodeTableOfContents is DecodeNiches for {chapter, title} entries.
// Entries without a usable chapter number take their 1-based position.
func DecodeTableOfContents(raw string) ([]models.TOCEntry, bool) {
	data := []byte(strings.TrimSpace(raw))
	if !json.Valid(data) {
		return nil, false
	}
	entries := decodeList[models.TOCEntry](data)
	for i := range entries {
		if entries[i].Chapter == 0 {
			entries[i].Chapter = i + 1
		}
	}
	return entries, true
}

func decodeList[T any](data []byte) []T {
	items := []T{}
	if err := json.Unmarshal(data, &items); err == nil {
		if items == nil {
			return []T{}
		}
		return items
	}
	for _, field := range objectFields(data) {
		var inner []T
		if err := json.Unmarshal(field, &inner); err == nil && len(inner) > 0 {
			return inner
		}
	}
	return []T{}
}

// objectFields returns the field values of a JSON object in document order,
// or nil when data is not an object.
func objectFields(data []byte) []json.RawMessage {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	var fields []json.RawMessage
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return fields
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fields
		}
		fields = append(fields, value)
	}
	return fields
}

// FallbackNiches treats raw as one niche per non-blank line.
func FallbackNiches(raw string, limit int) []models.Niche {
	lines := listLines(raw, limit)
	out := make([]models.Niche, 0, len(lines))
	for i, line := range lines {
		out = append(out, models.Niche{
			Title:       line,
			Description: fmt.Sprintf("Profitable niche opportunity %d", i+1),
		})
	}
	return out
}

// FallbackTableOfContents treats raw as one chapter title per non-blank line,
// numbered from 1.
func FallbackTableOfContents(raw string, limit int) []models.TOCEntry {
	lines := listLines(raw, limit)
	out := make([]models.TOCEntry, 0, len(lines))
	for i, line := range lines {
		out = append(out, models.TOCEntry{Chapter: i + 1, Title: line})
	}
	return out
}

// listLines returns at most limit non-blank lines with any leading list
// number ("1.", "2)", "3:") removed.
func listLines(raw string, limit int) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if len(out) == limit {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, strings.TrimSpace(listPrefix.ReplaceAllString(line, "")))
	}
	return out
}
