// Package metadata turns raw OCR text into a best-effort book metadata
// record. Each field has its own extractor trying patterns in priority order
// and stopping at the first match. Extraction never fails: a field with no
// match is simply left empty, and callers must treat every field as optional.
package metadata

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Metadata is the extracted record used to pre-fill the add-book form. It is
// reviewed by a human before submission and never authoritative.
type Metadata struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Edition     string `json:"edition,omitempty"`
	Year        string `json:"year,omitempty"`
	Language    string `json:"language,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

var (
	isbnLabeled = regexp.MustCompile(`(?i)ISBN(?:[-\s]*1[03])?[:\s-]*([0-9][0-9Xx-]{8,16})`)
	isbnBare    = regexp.MustCompile(`(?:978|979)[-0-9]{10,14}`)
	nonISBN     = regexp.MustCompile(`[^0-9Xx]`)

	titleLabeled  = regexp.MustCompile(`(?im)^(?:title|book)\s*[:\-]\s*(.+)$`)
	authorLabeled = regexp.MustCompile(`(?im)^(?:author|written\s+by)\s*[:\-]\s*(.+)$`)
	byPattern     = regexp.MustCompile(`(?i)\b(?:written\s+by|by)[:\s]+([A-Za-z][A-Za-z .'\-]{1,60})`)

	publishedBy      = regexp.MustCompile(`(?i)published\s+by`)
	publisherLabeled = regexp.MustCompile(`(?i)(?:published\s+by|publisher|publishing\s+house)\s*[:\-]?\s*([A-Za-z][A-Za-z&.,' ]{1,60})`)
	publisherSuffix  = regexp.MustCompile(`([A-Z][A-Za-z&.,' ]+(?:Publishing|Publishers|Press|Books))`)

	editionOrdinal = regexp.MustCompile(`(?i)(\d+(?:st|nd|rd|th)\s+edition)`)
	editionLabeled = regexp.MustCompile(`(?i)(?:edition|version)\s*[:\-]?\s*([0-9][0-9.]*)`)

	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	languageLabeled    = regexp.MustCompile(`(?im)^language\s*[:\-]\s*(.+)$`)
	categoryLabeled    = regexp.MustCompile(`(?im)^(?:category|genre|subject)\s*[:\-]\s*(.+)$`)
	descriptionLabeled = regexp.MustCompile(`(?im)^(?:description|synopsis|about)\s*[:\-]\s*(.+)$`)

	// Lines that should never be mistaken for a title or author.
	markerLine = regexp.MustCompile(`(?i)isbn|copyright|©|^page\b|^chapter\b`)
	// Any labeled line; skipped by the positional author fallback.
	labeledLine = regexp.MustCompile(`(?i)^(?:title|book|author|written\s+by|publisher|published\s+by|isbn|edition|language|category|genre|subject|description|synopsis|about)\b`)

	nonAlnum = regexp.MustCompile(`[^a-z0-9]`)
)

// The fixed category enumeration the marketplace understands. Aliases map
// normalized spellings to the canonical value.
var categoryAliases = map[string]string{
	"fiction":           "fiction",
	"nonfiction":        "non-fiction",
	"academic":          "academic",
	"religious":         "religious",
	"children":          "children",
	"childrens":         "children",
	"classic":           "classic",
	"classicliterature": "classic",
	"mystery":           "mystery",
	"romance":           "romance",
	"scifi":             "scifi",
	"sciencefiction":    "scifi",
}

var languageAliases = map[string]string{
	"english": "english",
	"bengali": "bengali",
	"bangla":  "bengali",
	"arabic":  "arabic",
}

// Extract runs every field extractor over the text and assembles the record
func Extract(text string) Metadata {
	return Metadata{
		Title:       ExtractTitle(text),
		Author:      ExtractAuthor(text),
		ISBN:        ExtractISBN(text),
		Publisher:   ExtractPublisher(text),
		Edition:     ExtractEdition(text),
		Year:        ExtractYear(text),
		Language:    ExtractLanguage(text),
		Category:    ExtractCategory(text),
		Description: ExtractDescription(text),
	}
}

// Merge coalesces two records: a field from overlay is taken only when base
// has not already populated it. First writer wins, later passes fill gaps.
func Merge(base, overlay Metadata) Metadata {
	merged := base
	if merged.Title == "" {
		merged.Title = overlay.Title
	}
	if merged.Author == "" {
		merged.Author = overlay.Author
	}
	if merged.ISBN == "" {
		merged.ISBN = overlay.ISBN
	}
	if merged.Publisher == "" {
		merged.Publisher = overlay.Publisher
	}
	if merged.Edition == "" {
		merged.Edition = overlay.Edition
	}
	if merged.Year == "" {
		merged.Year = overlay.Year
	}
	if merged.Language == "" {
		merged.Language = overlay.Language
	}
	if merged.Category == "" {
		merged.Category = overlay.Category
	}
	if merged.Description == "" {
		merged.Description = overlay.Description
	}
	return merged
}

// ExtractISBN matches an explicit ISBN label or a bare 978/979 run, then
// strips every character outside [0-9Xx] from the captured span.
func ExtractISBN(text string) string {
	if m := isbnLabeled.FindStringSubmatch(text); m != nil {
		return nonISBN.ReplaceAllString(m[1], "")
	}
	if m := isbnBare.FindString(text); m != "" {
		return nonISBN.ReplaceAllString(m, "")
	}
	return ""
}

// ExtractTitle prefers an explicit Title:/Book: label, otherwise takes the
// first line of plausible length that is not an ISBN/copyright/page/chapter
// marker line.
func ExtractTitle(text string) string {
	if m := titleLabeled.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	for _, line := range splitLines(text) {
		if markerLine.MatchString(line) {
			continue
		}
		if n := utf8.RuneCountInString(line); n >= 3 && n <= 200 {
			return cleanValue(line)
		}
	}
	return ""
}

// ExtractAuthor prefers a "by ..." pattern, otherwise takes the first short
// unlabeled line after the title as a best guess.
func ExtractAuthor(text string) string {
	if m := authorLabeled.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	for _, line := range splitLines(text) {
		// "Published by X" names the publisher, not the author.
		if publishedBy.MatchString(line) {
			continue
		}
		if m := byPattern.FindStringSubmatch(line); m != nil {
			return cleanValue(m[1])
		}
	}

	title := ExtractTitle(text)
	seenTitle := title == ""
	for _, line := range splitLines(text) {
		if !seenTitle {
			if strings.Contains(line, title) {
				seenTitle = true
			}
			continue
		}
		if markerLine.MatchString(line) || labeledLine.MatchString(line) {
			continue
		}
		if n := utf8.RuneCountInString(line); n >= 3 && n <= 50 {
			return cleanValue(line)
		}
	}
	return ""
}

// ExtractPublisher matches a publisher label or a trailing
// Publishing/Publishers/Press/Books company name.
func ExtractPublisher(text string) string {
	if m := publisherLabeled.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	if m := publisherSuffix.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	return ""
}

// ExtractEdition matches "3rd edition" style ordinals or a labeled number
func ExtractEdition(text string) string {
	if m := editionOrdinal.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	if m := editionLabeled.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	return ""
}

// ExtractYear matches the first plausible publication year (19xx/20xx)
func ExtractYear(text string) string {
	return yearPattern.FindString(text)
}

// ExtractLanguage matches a labeled language line and validates it against
// the supported set.
func ExtractLanguage(text string) string {
	if m := languageLabeled.FindStringSubmatch(text); m != nil {
		if lang, ok := languageAliases[normalizeToken(m[1])]; ok {
			return lang
		}
	}
	return ""
}

// ExtractCategory matches a labeled category line and accepts it only when it
// normalizes to one of the fixed enumeration values.
func ExtractCategory(text string) string {
	if m := categoryLabeled.FindStringSubmatch(text); m != nil {
		if cat, ok := categoryAliases[normalizeToken(m[1])]; ok {
			return cat
		}
	}
	return ""
}

// ExtractDescription matches a labeled description/synopsis line
func ExtractDescription(text string) string {
	if m := descriptionLabeled.FindStringSubmatch(text); m != nil {
		return cleanValue(m[1])
	}
	return ""
}

// splitLines returns the trimmed non-empty lines of the text
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// cleanValue trims whitespace and strips one layer of surrounding quotes
func cleanValue(s string) string {
	s = strings.TrimSpace(s)
	for _, pair := range [][2]string{{`"`, `"`}, {"'", "'"}, {"“", "”"}, {"‘", "’"}} {
		if strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) && len(s) >= len(pair[0])+len(pair[1]) {
			s = strings.TrimSuffix(strings.TrimPrefix(s, pair[0]), pair[1])
			break
		}
	}
	return strings.TrimSpace(s)
}

// normalizeToken lowercases and drops everything outside [a-z0-9] so that
// case and spacing variants compare equal.
func normalizeToken(s string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(s), "")
}
