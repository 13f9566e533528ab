package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrContentNotFound is returned when the page has no #page-content element.
var ErrContentNotFound = errors.New("page content not found")

const (
	contentSelector = "#page-content"
	redactedMarker  = "[REDACTED]"
	// stopMarker opens the navigation footer that follows the article body.
	stopMarker     = "«"
	titleSeparator = " - "
)

var censorRun = regexp.MustCompile("█+")

// Document is the label/value record read from one article page.
type Document struct {
	// Title is the raw text of the page <title>.
	Title  string
	Fields Record
}

// FromHTML parses an article page and collects the text that follows each
// bolded label inside #page-content. When the page has a title, its first
// " - " separated segment is stored under the "name" key.
func FromHTML(input []byte) (Document, error) {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil {
		return Document{}, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	content := doc.Find(contentSelector)
	if content.Length() == 0 {
		return Document{}, ErrContentNotFound
	}

	var st labelState
	content.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		st.step(p)
		return !st.stopped
	})
	st.flush()

	out := Document{Title: doc.Find("title").Text(), Fields: st.fields}
	if out.Title != "" {
		name, _, _ := strings.Cut(out.Title, titleSeparator)
		out.Fields.Set("name", name)
	}
	return out, nil
}

// labelState is the accumulator threaded through the paragraph walk.
// An empty label means no label is open.
type labelState struct {
	label   string
	value   string
	stopped bool
	fields  Record
}

func (s *labelState) step(p *goquery.Selection) {
	text := p.Text()
	if strong := p.Find("strong"); strong.Length() > 0 {
		s.flush()
		s.label = strong.Text()
		s.value = strings.TrimSpace(dropUTF16Prefix(text, utf16Len(s.label)))
		return
	}
	if strings.HasPrefix(text, stopMarker) {
		s.stopped = true
		return
	}
	if s.value != "" {
		s.value += " "
	}
	s.value += text
}

// flush stores the open label, if any. The label stays set; the next step
// either replaces it or the walk ends.
func (s *labelState) flush() {
	if s.label == "" {
		return
	}
	s.fields.Set(NormalizeKey(s.label), strings.TrimSpace(Redact(s.value)))
}

// NormalizeKey lowercases a label and replaces spaces with underscores,
// turning "Object Class" into "object_class".
func NormalizeKey(label string) string {
	// Casers are stateful, so each call gets its own.
	return strings.ReplaceAll(cases.Lower(language.Und).String(label), " ", "_")
}

// Redact replaces each run of U+2588 block characters with [REDACTED].
func Redact(s string) string {
	return censorRun.ReplaceAllLiteralString(s, redactedMarker)
}

// Labels are cut from the paragraph text by length in UTF-16 code units.
// The label is not required to be a prefix of the text.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func dropUTF16Prefix(s string, n int) string {
	u := utf16.Encode([]rune(s))
	if n >= len(u) {
		return ""
	}
	return string(utf16.Decode(u[n:]))
}
