package publish

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 17, 0, 30, 5, 0, time.UTC)

func TestNewStamp_ShiftsToFixedOffset(t *testing.T) {
	s := NewStamp(fixedNow, 8*time.Hour)
	assert.Equal(t, Stamp{Year: 2026, Month: 10, Day: 17, Hour: 8, Minute: 30, Second: 5}, s)
	assert.Equal(t, "083005", s.TimeString())
	assert.Equal(t, "10-17_08-30-05", s.Compact())

	// crossing the year boundary
	nye := NewStamp(time.Date(2026, 12, 31, 20, 0, 0, 0, time.UTC), 8*time.Hour)
	assert.Equal(t, 2027, nye.Year)
	assert.Equal(t, 1, nye.Month)
	assert.Equal(t, 1, nye.Day)
	assert.Equal(t, "040000", nye.TimeString())
}

func TestBuildLayout(t *testing.T) {
	stamp := NewStamp(fixedNow, 8*time.Hour)

	cases := []struct {
		name     string
		scheme   Scheme
		title    string
		markdown bool
		want     Layout
	}{
		{"dated", SchemeDated, "ignored", false, Layout{HTMLPath: "2026/10/17/083005.html"}},
		{"dated with markdown", SchemeDated, "", true, Layout{HTMLPath: "2026/10/17/083005.html", MarkdownPath: "2026/10/17/083005.md"}},
		{"yearly", SchemeYearly, "", false, Layout{HTMLPath: "2026/10-17_08-30-05.html"}},
		{"slug", SchemeSlug, "Hello  World", false, Layout{HTMLPath: "articles/hello-world.html", MarkdownPath: "content/hello-world.md"}},
		{"slug empty title", SchemeSlug, "   ", false, Layout{HTMLPath: "articles/20261017-083005.html", MarkdownPath: "content/20261017-083005.md"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, BuildLayout(tc.scheme, stamp, tc.title, tc.markdown))
		})
	}
}

func TestLayoutFiles_MarkdownFirst(t *testing.T) {
	l := Layout{HTMLPath: "a.html", MarkdownPath: "a.md"}
	require.Equal(t, []string{"a.md", "a.html"}, l.Files())
	require.Equal(t, []string{"b.html"}, Layout{HTMLPath: "b.html"}.Files())
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello World", "hello-world"},
		{"  Go\tis\nfun  ", "go-is-fun"},
		{"../../etc/passwd", "etc-passwd"},
		{`a\b/c`, "a-b-c"},
		{"发布 文章", "发布-文章"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}

func TestParseScheme(t *testing.T) {
	for in, want := range map[string]Scheme{"": SchemeDated, "Dated": SchemeDated, "yearly": SchemeYearly, " slug ": SchemeSlug} {
		got, err := ParseScheme(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseScheme("weekly")
	require.Error(t, err)
}
