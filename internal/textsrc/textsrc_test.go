package textsrc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKindFor(t *testing.T) {
	cases := map[string]Kind{
		"notes.txt":      Text,
		"README.md":      Markdown,
		"doc.markdown":   Markdown,
		"page.HTML":      HTML,
		"page.htm":       HTML,
		"roster.csv":     CSV,
		"dir/nested.Txt": Text,
	}
	for name, want := range cases {
		got, err := KindFor(name)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
	}
}

func TestKindFor_Unsupported(t *testing.T) {
	_, err := KindFor("report.pdf")
	if err == nil {
		t.Fatal("expected error for .pdf")
	}
	if !strings.Contains(err.Error(), ".pdf") {
		t.Errorf("expected error to name the extension, got %q", err)
	}
}

func TestForKind_Unknown(t *testing.T) {
	if _, err := ForKind(Kind(42)); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if _, err := Extract([]byte("x"), Kind(42)); err == nil {
		t.Fatal("expected Extract to reject unknown kind")
	}
}

func TestExtract_Text(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\n\n\nSecond paragraph.\n   \nThird paragraph."
	got, err := Extract([]byte(input), Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
	}
}

func TestExtract_TextEmpty(t *testing.T) {
	got, err := Extract(nil, Text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 paragraphs, got %d", len(got))
	}
}

func TestExtract_Markdown(t *testing.T) {
	input := `# Title

Intro text with *emphasis* and more.

- one
- two

~~~
x := 1
~~~
`
	got, err := Extract([]byte(input), Markdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Title",
		"Intro text with emphasis and more.",
		"one\ntwo",
		"x := 1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
	}
}

func TestExtract_MarkdownSoftBreak(t *testing.T) {
	got, err := Extract([]byte("line one\nline two\n"), Markdown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"line one\nline two"}, got); diff != "" {
		t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
	}
}

func TestExtract_HTML(t *testing.T) {
	input := `<html><head><title>Ignored</title></head><body>
<header>Site header</header>
<h1>Heading</h1>
<p>First <b>bold</b> paragraph.</p>
<script>var x = 1;</script>
<ul><li>item one</li><li>item two</li></ul>
<p>   </p>
<footer>Footer text</footer>
</body></html>`
	got, err := Extract([]byte(input), HTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Heading",
		"First bold paragraph.",
		"item one",
		"item two",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
	}
}

func TestExtract_CSV(t *testing.T) {
	input := "first,last,grade\nNikofl, Inno,B\nJames,Leborn,A\n\"Kiturl\",Deropmerl\n"
	got, err := Extract([]byte(input), CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Nikofl Inno B",
		"James Leborn A",
		"Kiturl Deropmerl",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected paragraphs (-want +got):\n%s", diff)
	}
}

func TestExtract_CSVHeaderOnly(t *testing.T) {
	got, err := Extract([]byte("a,b,c\n"), CSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
