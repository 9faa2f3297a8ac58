package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractISBN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "labeled_plain", text: "ISBN: 9780000000002", want: "9780000000002"},
		{name: "labeled_isbn13_hyphenated", text: "ISBN-13: 978-0-7432-7356-5", want: "9780743273565"},
		{name: "labeled_isbn10_check_x", text: "ISBN 043942089X", want: "043942089X"},
		{name: "bare_978_prefix", text: "some text 978-3-16-148410-0 more text", want: "9783161484100"},
		{name: "bare_979_prefix", text: "code 9791234567896 here", want: "9791234567896"},
		{name: "none", text: "no identifiers here", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractISBN(tc.text))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "labeled", text: "Title: The Great Gatsby", want: "The Great Gatsby"},
		{name: "labeled_book", text: "Book: Clean Code", want: "Clean Code"},
		{name: "labeled_quoted", text: `Title: "1984"`, want: "1984"},
		{name: "first_plausible_line", text: "The Great Gatsby\nF. Scott Fitzgerald", want: "The Great Gatsby"},
		{name: "skips_isbn_line", text: "ISBN: 9780743273565\nThe Great Gatsby", want: "The Great Gatsby"},
		{name: "skips_copyright_line", text: "Copyright 2004\nThe Kite Runner", want: "The Kite Runner"},
		{name: "too_short_line_skipped", text: "ab\nA Real Title", want: "A Real Title"},
		{name: "empty", text: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractTitle(tc.text))
		})
	}
}

func TestExtractAuthor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "labeled", text: "Author: Jane Austen", want: "Jane Austen"},
		{name: "written_by_labeled", text: "Written by: Leo Tolstoy", want: "Leo Tolstoy"},
		{name: "by_pattern", text: "Title: Foo\nby Bar", want: "Bar"},
		{name: "line_after_title", text: "The Great Gatsby\nF. Scott Fitzgerald\nISBN: 9780743273565", want: "F. Scott Fitzgerald"},
		{name: "skips_labeled_line_after_title", text: "The Great Gatsby\nPublisher: Scribner\nF. Scott Fitzgerald", want: "F. Scott Fitzgerald"},
		{name: "none", text: "justoneline of text", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractAuthor(tc.text))
		})
	}
}

func TestExtractPublisher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "labeled", text: "Publisher: Penguin Random House", want: "Penguin Random House"},
		{name: "published_by", text: "Published by Oxford University", want: "Oxford University"},
		{name: "company_suffix", text: "Scribner Press", want: "Scribner Press"},
		{name: "publishing_suffix", text: "printed for Ananda Publishing in Dhaka", want: "Ananda Publishing"},
		{name: "none", text: "nothing relevant", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractPublisher(tc.text))
		})
	}
}

func TestExtractEdition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "ordinal", text: "3rd edition, revised", want: "3rd edition"},
		{name: "ordinal_capitalized", text: "2nd Edition", want: "2nd Edition"},
		{name: "labeled_number", text: "Edition: 5", want: "5"},
		{name: "version_label", text: "Version 2.1", want: "2.1"},
		{name: "none", text: "no edition info", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractEdition(tc.text))
		})
	}
}

func TestExtractYear(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1997", ExtractYear("First published 1997 in London"))
	require.Equal(t, "2020", ExtractYear("Copyright 2020"))
	require.Equal(t, "", ExtractYear("ISBN: 9780000000002"), "digits inside an ISBN are not a year")
	require.Equal(t, "", ExtractYear("in the year 1756"), "pre-1900 years are out of range")
}

func TestExtractLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english", text: "Language: English", want: "english"},
		{name: "bengali", text: "Language: Bengali", want: "bengali"},
		{name: "bangla_alias", text: "Language: Bangla", want: "bengali"},
		{name: "arabic", text: "language - Arabic", want: "arabic"},
		{name: "unsupported", text: "Language: Klingon", want: ""},
		{name: "unlabeled", text: "English", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractLanguage(tc.text))
		})
	}
}

func TestExtractCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "fiction", text: "Category: Fiction", want: "fiction"},
		{name: "genre_label", text: "Genre: Mystery", want: "mystery"},
		{name: "subject_label", text: "Subject: Academic", want: "academic"},
		{name: "science_fiction_alias", text: "Category: Science Fiction", want: "scifi"},
		{name: "non_fiction_spacing", text: "Category: Non Fiction", want: "non-fiction"},
		{name: "classic_literature_alias", text: "Genre: Classic Literature", want: "classic"},
		{name: "outside_enumeration", text: "Category: Cooking", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractCategory(tc.text))
		})
	}
}

func TestExtractDescription(t *testing.T) {
	t.Parallel()

	require.Equal(t, "A story of obsession.", ExtractDescription("Description: A story of obsession."))
	require.Equal(t, "A whale hunt.", ExtractDescription("Synopsis: A whale hunt."))
	require.Equal(t, "", ExtractDescription("no labels"))
}

func TestExtract(t *testing.T) {
	t.Parallel()

	text := "Title: Foo\nby Bar\nISBN: 9780000000002"
	got := Extract(text)
	require.Equal(t, Metadata{Title: "Foo", Author: "Bar", ISBN: "9780000000002"}, got)

	// Deterministic: the same text always yields the same record.
	require.Equal(t, got, Extract(text))
}

func TestExtract_FullCoverPage(t *testing.T) {
	t.Parallel()

	text := `The Great Gatsby
F. Scott Fitzgerald
Published by Scribner
ISBN: 978-0-7432-7356-5
First published 1925
Language: English
Genre: Classic Literature`

	got := Extract(text)
	require.Equal(t, "The Great Gatsby", got.Title)
	require.Equal(t, "F. Scott Fitzgerald", got.Author)
	require.Equal(t, "9780743273565", got.ISBN)
	require.Equal(t, "Scribner", got.Publisher)
	require.Equal(t, "1925", got.Year)
	require.Equal(t, "english", got.Language)
	require.Equal(t, "classic", got.Category)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("base_wins_overlay_fills_gaps", func(t *testing.T) {
		t.Parallel()

		base := Metadata{Title: "A"}
		overlay := Metadata{Title: "B", Author: "C"}
		require.Equal(t, Metadata{Title: "A", Author: "C"}, Merge(base, overlay))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		m := Extract("Title: Foo\nby Bar\nISBN: 9780000000002")
		require.Equal(t, m, Merge(m, m))
		require.Equal(t, m, Merge(m, Metadata{}))
		require.Equal(t, m, Merge(Metadata{}, m))
	})

	t.Run("all_fields_coalesce", func(t *testing.T) {
		t.Parallel()

		overlay := Metadata{
			Title:       "t",
			Author:      "a",
			ISBN:        "i",
			Publisher:   "p",
			Edition:     "e",
			Year:        "y",
			Language:    "l",
			Category:    "c",
			Description: "d",
		}
		require.Equal(t, overlay, Merge(Metadata{}, overlay))
	})
}

func TestCleanValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "  hello  ", want: "hello"},
		{name: "double_quotes", in: `"hello"`, want: "hello"},
		{name: "single_quotes", in: "'hello'", want: "hello"},
		{name: "smart_quotes", in: "“hello”", want: "hello"},
		{name: "only_one_layer", in: `""hello""`, want: `"hello"`},
		{name: "mismatched_kept", in: `"hello'`, want: `"hello'`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, cleanValue(tc.in))
		})
	}
}
