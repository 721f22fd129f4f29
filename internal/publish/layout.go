package publish

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Scheme selects how storage paths are derived.
type Scheme string

const (
	// SchemeDated writes {yyyy}/{mm}/{dd}/{hhmmss}.html.
	SchemeDated Scheme = "dated"
	// SchemeYearly writes {yyyy}/{mm-dd_hh-mm-ss}.html.
	SchemeYearly Scheme = "yearly"
	// SchemeSlug writes content/{slug}.md and articles/{slug}.html.
	SchemeSlug Scheme = "slug"
)

// ParseScheme validates a configured scheme name.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeDated, "":
		return SchemeDated, nil
	case SchemeYearly:
		return SchemeYearly, nil
	case SchemeSlug:
		return SchemeSlug, nil
	}
	return "", fmt.Errorf("unknown path scheme %q", s)
}

// Stamp is a wall-clock reading in the publishing zone.
type Stamp struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// NewStamp reads now in a fixed zone offset from UTC.
func NewStamp(now time.Time, offset time.Duration) Stamp {
	t := now.In(time.FixedZone("", int(offset/time.Second)))
	return Stamp{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
	}
}

// TimeString is the compact hhmmss file name used by the dated scheme.
func (s Stamp) TimeString() string {
	return fmt.Sprintf("%02d%02d%02d", s.Hour, s.Minute, s.Second)
}

// Compact is the mm-dd_hh-mm-ss file name used by the yearly scheme.
func (s Stamp) Compact() string {
	return fmt.Sprintf("%02d-%02d_%02d-%02d-%02d", s.Month, s.Day, s.Hour, s.Minute, s.Second)
}

// Layout is the set of paths one submission is written to.
// HTMLPath is always set and is the path reported back to the submitter.
type Layout struct {
	HTMLPath     string
	MarkdownPath string
}

// Files lists the paths in commit order: Markdown source first, HTML last.
func (l Layout) Files() []string {
	if l.MarkdownPath == "" {
		return []string{l.HTMLPath}
	}
	return []string{l.MarkdownPath, l.HTMLPath}
}

// BuildLayout derives the storage paths for a submission. The slug scheme
// always includes Markdown; the others only when withMarkdown is set.
func BuildLayout(scheme Scheme, stamp Stamp, title string, withMarkdown bool) Layout {
	var l Layout
	switch scheme {
	case SchemeSlug:
		slug := Slugify(title)
		if slug == "" {
			slug = fmt.Sprintf("%04d%02d%02d-%s", stamp.Year, stamp.Month, stamp.Day, stamp.TimeString())
		}
		return Layout{
			HTMLPath:     "articles/" + slug + ".html",
			MarkdownPath: "content/" + slug + ".md",
		}
	case SchemeYearly:
		l.HTMLPath = fmt.Sprintf("%04d/%s.html", stamp.Year, stamp.Compact())
	default:
		l.HTMLPath = fmt.Sprintf("%04d/%02d/%02d/%s.html", stamp.Year, stamp.Month, stamp.Day, stamp.TimeString())
	}
	if withMarkdown {
		l.MarkdownPath = strings.TrimSuffix(l.HTMLPath, ".html") + ".md"
	}
	return l
}

// Slugify lowercases title and joins its whitespace-separated words with
// hyphens. Path separators are dropped so a title cannot escape its directory.
func Slugify(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return ' '
		}
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, strings.ToLower(title))

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, w := range words {
		if strings.Trim(w, ".") == "" {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, "-")
}
