package extract

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type kv struct{ Key, Value string }

func pairs(r Record) []kv {
	out := make([]kv, 0, r.Len())
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		out = append(out, kv{k, v})
	}
	return out
}

func mustExtract(t *testing.T, page string) Document {
	t.Helper()
	doc, err := FromHTML([]byte(page))
	if err != nil {
		t.Fatalf("FromHTML error: %v", err)
	}
	return doc
}

func TestFromHTML_ArticleFields(t *testing.T) {
	page := `<!doctype html>
<html>
  <head><title>SCP-173 - SCP Foundation</title></head>
  <body>
    <div id="page-content">
      <p><strong>Item #:</strong> SCP-173</p>
      <p><strong>Object Class</strong> Euclid</p>
      <p><strong>Special Containment Procedures</strong> Keep it in a locked container.</p>
      <p>Personnel must maintain eye contact.</p>
      <p><strong>Description</strong> Moved to Site-19 in 1993.</p>
      <p>Origin is ████ unknown.</p>
    </div>
  </body>
</html>`

	doc := mustExtract(t, page)
	want := []kv{
		{"item_#:", "SCP-173"},
		{"object_class", "Euclid"},
		{"special_containment_procedures", "Keep it in a locked container. Personnel must maintain eye contact."},
		{"description", "Moved to Site-19 in 1993. Origin is [REDACTED] unknown."},
		{"name", "SCP-173"},
	}
	if diff := cmp.Diff(want, pairs(doc.Fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if doc.Title != "SCP-173 - SCP Foundation" {
		t.Fatalf("title=%q", doc.Title)
	}
}

// The footer marker stops the walk for good; later labels never appear.
func TestFromHTML_StopMarkerEndsWalk(t *testing.T) {
	page := `<div id="page-content">
<p><strong>A</strong> a1</p>
<p>a2</p>
<p><strong>B</strong> b1</p>
<p>« SCP-001 | SCP-003 »</p>
<p><strong>C</strong> c1</p>
</div>`

	doc := mustExtract(t, page)
	want := []kv{{"a", "a1 a2"}, {"b", "b1"}}
	if diff := cmp.Diff(want, pairs(doc.Fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if _, ok := doc.Fields.Get("c"); ok {
		t.Fatalf("label after stop marker must not be recorded")
	}
}

func TestFromHTML_ContentNotFound(t *testing.T) {
	_, err := FromHTML([]byte(`<html><head><title>x</title></head><body><p><strong>A</strong> b</p></body></html>`))
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestFromHTML_TitleName(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"SCP-999 - The Thing", "SCP-999"},
		{"SCP-999 - The Thing - SCP Foundation", "SCP-999"},
		{"No separator", "No separator"},
		{"SCP-999-J", "SCP-999-J"},
	}
	for _, tc := range cases {
		doc := mustExtract(t, `<html><head><title>`+tc.title+`</title></head><body><div id="page-content"></div></body></html>`)
		got, ok := doc.Fields.Get("name")
		if !ok || got != tc.want {
			t.Fatalf("title %q: name=%q ok=%v, want %q", tc.title, got, ok, tc.want)
		}
	}
}

func TestFromHTML_NoTitleNoName(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p><strong>A</strong> b</p></div>`)
	if _, ok := doc.Fields.Get("name"); ok {
		t.Fatalf("name must be absent without a title")
	}
}

// The value is cut from the paragraph text by the label's length, even when
// the label is not a literal prefix of that text.
func TestFromHTML_SliceByLabelLength(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p> <strong>Item</strong> value</p></div>`)
	if got, _ := doc.Fields.Get("item"); got != "m value" {
		t.Fatalf("item=%q, want %q", got, "m value")
	}

	doc = mustExtract(t, `<div id="page-content"><p><strong>A long label</strong></p></div>`)
	if got, ok := doc.Fields.Get("a_long_label"); !ok || got != "" {
		t.Fatalf("a_long_label=%q ok=%v, want empty", got, ok)
	}
}

// Length is counted in UTF-16 code units, so an astral label consumes two.
func TestFromHTML_SliceCountsUTF16Units(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p>ab<strong>𝔸</strong> rest</p></div>`)
	if got, _ := doc.Fields.Get("𝔸"); got != "𝔸 rest" {
		t.Fatalf("value=%q, want %q", got, "𝔸 rest")
	}
}

func TestFromHTML_MultipleStrongConcatenate(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p><strong>Addendum</strong> <strong>A</strong> text</p></div>`)
	// "AddendumA" is nine characters long; "Addendum " is what gets cut.
	if got, ok := doc.Fields.Get("addenduma"); !ok || got != "A text" {
		t.Fatalf("addenduma=%q ok=%v", got, ok)
	}
}

func TestFromHTML_EmptyLabelIsNotRecorded(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content">
<p><strong></strong>orphan</p>
<p>more</p>
<p><strong>B</strong> b</p>
</div>`)
	want := []kv{{"b", "b"}}
	if diff := cmp.Diff(want, pairs(doc.Fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHTML_LeadingParagraphsWithoutLabel(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p>rating: +12</p><p><strong>A</strong> a</p></div>`)
	want := []kv{{"a", "a"}}
	if diff := cmp.Diff(want, pairs(doc.Fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

// A repeated label keeps its first position and takes the latest value.
func TestFromHTML_DuplicateLabel(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content">
<p><strong>Note</strong> first</p>
<p><strong>Other</strong> x</p>
<p><strong>Note</strong> second</p>
</div>`)
	want := []kv{{"note", "second"}, {"other", "x"}}
	if diff := cmp.Diff(want, pairs(doc.Fields)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFromHTML_LabelIsNotRedacted(t *testing.T) {
	doc := mustExtract(t, `<div id="page-content"><p><strong>██ Field</strong> ██</p></div>`)
	if got, ok := doc.Fields.Get("██_field"); !ok || got != "[REDACTED]" {
		t.Fatalf("value=%q ok=%v", got, ok)
	}
}

func TestRedact(t *testing.T) {
	cases := map[string]string{
		"████ is classified":    "[REDACTED] is classified",
		"a ██ b █ c":            "a [REDACTED] b [REDACTED] c",
		"nothing to hide":       "nothing to hide",
		"":                      "",
		"█":                     "[REDACTED]",
		"Dr. ███████ and ██████": "Dr. [REDACTED] and [REDACTED]",
	}
	for in, want := range cases {
		if got := Redact(in); got != want {
			t.Fatalf("Redact(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Object Class":                   "object_class",
		"Special Containment Procedures": "special_containment_procedures",
		"description":                    "description",
		"Item #:":                        "item_#:",
		"ÉTAT Civil":                     "état_civil",
	}
	for in, want := range cases {
		got := NormalizeKey(in)
		if got != want {
			t.Fatalf("NormalizeKey(%q)=%q, want %q", in, got, want)
		}
		if again := NormalizeKey(got); again != got {
			t.Fatalf("NormalizeKey not idempotent: %q -> %q", got, again)
		}
	}
}

func TestLabelExtractor_ImplementsExtractor(t *testing.T) {
	var ex Extractor = LabelExtractor{}
	doc, err := ex.Extract([]byte(`<div id="page-content"><p><strong>A</strong> b</p></div>`))
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if got, _ := doc.Fields.Get("a"); got != "b" {
		t.Fatalf("a=%q", got)
	}
}
