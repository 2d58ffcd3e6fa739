// File: digitalmindset/models/product.go
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Niche is a product niche suggestion.
type Niche struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON also accepts a bare string as the niche title.
func (n *Niche) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		*n = Niche{Title: title}
		return nil
	}
	type plain Niche
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*n = Niche(p)
	return nil
}

// TOCEntry is one line of a product's table of contents.
type TOCEntry struct {
	Chapter int    `json:"chapter"`
	Title   string `json:"title"`
}

// UnmarshalJSON accepts a bare string as the title, and a chapter given as
// an integer, a whole float or a numeric string. Any other chapter value
// reads as 0.
func (e *TOCEntry) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		*e = TOCEntry{Title: title}
		return nil
	}
	var raw struct {
		Chapter json.RawMessage `json:"chapter"`
		Title   string          `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = TOCEntry{Chapter: chapterNumber(raw.Chapter), Title: raw.Title}
	return nil
}

func chapterNumber(raw json.RawMessage) int {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0
		}
	}
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

// Chapter holds the generated text of one chapter.
type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Product is one generated long-form document. A token's products form an
// append-only history; the last one is the current product.
type Product struct {
	ID              string          `json:"id,omitempty"`
	ProductTitle    string          `json:"productTitle"`
	Niche           string          `json:"niche"`
	TableOfContents []TOCEntry      `json:"tableOfContents"`
	Chapters        map[int]Chapter `json:"chapters"`
	CreatedAt       Timestamp       `json:"createdAt"`
}

// ProductHistory is the ordered list of products created under one token.
type ProductHistory []Product

// Current returns the most recently appended product, or nil for an empty
// history. The pointer aliases the slice element.
func (h ProductHistory) Current() *Product {
	if len(h) == 0 {
		return nil
	}
	return &h[len(h)-1]
}

// TableOfContentsResponse is returned by the table of contents stage.
type TableOfContentsResponse struct {
	TableOfContents []TOCEntry `json:"tableOfContents"`
	ProductTitle    string     `json:"productTitle"`
}
