package render

import (
	"strings"
	"testing"

	"github.com/rinilkunhiraman/portfolio-2026/models"
)

func TestBlocksHTMLParagraphsAndHeadings(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Style: "h3", Children: []models.Span{{Text: "My Journey"}}},
		{Type: "block", Children: []models.Span{{Text: "First paragraph."}}},
		{Type: "block", Style: "h4", Children: []models.Span{{Text: "Details"}}},
	}

	got := string(BlocksHTML(blocks))
	want := "<h3>My Journey</h3>\n<p>First paragraph.</p>\n<h4>Details</h4>\n"
	if got != want {
		t.Errorf("BlocksHTML() = %q, want %q", got, want)
	}
}

func TestBlocksHTMLGroupsLists(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", ListItem: "bullet", Children: []models.Span{{Text: "one"}}},
		{Type: "block", ListItem: "bullet", Children: []models.Span{{Text: "two"}}},
		{Type: "block", ListItem: "number", Children: []models.Span{{Text: "first"}}},
		{Type: "block", Children: []models.Span{{Text: "after"}}},
	}

	got := string(BlocksHTML(blocks))
	if strings.Count(got, "<ul>") != 1 || strings.Count(got, "</ul>") != 1 {
		t.Errorf("consecutive bullets should share one <ul>: %q", got)
	}
	if !strings.Contains(got, "<ol>\n<li>first</li>\n</ol>") {
		t.Errorf("numbered list not rendered: %q", got)
	}
	if !strings.Contains(got, "<p>after</p>") {
		t.Errorf("trailing paragraph not rendered: %q", got)
	}
}

func TestBlocksHTMLMarks(t *testing.T) {
	blocks := []models.Block{
		{
			Type: "block",
			Children: []models.Span{
				{Text: "bold", Marks: []string{"strong"}},
				{Text: " and "},
				{Text: "linked", Marks: []string{"link1"}},
			},
			MarkDefs: []models.MarkDef{
				{Key: "link1", Type: "link", Href: "https://example.com"},
			},
		},
	}

	got := string(BlocksHTML(blocks))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("strong mark not rendered: %q", got)
	}
	if !strings.Contains(got, `<a href="https://example.com" rel="noopener noreferrer">linked</a>`) {
		t.Errorf("link annotation not rendered: %q", got)
	}
}

func TestBlocksHTMLEscapesText(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Children: []models.Span{{Text: "<script>alert(1)</script>"}}},
	}

	got := string(BlocksHTML(blocks))
	if strings.Contains(got, "<script>") {
		t.Errorf("text was not escaped: %q", got)
	}
}

func TestBlocksHTMLSkipsUnknownTypes(t *testing.T) {
	blocks := []models.Block{
		{Type: "image"},
		{Type: "block", Children: []models.Span{{Text: "kept"}}},
	}

	got := string(BlocksHTML(blocks))
	if got != "<p>kept</p>\n" {
		t.Errorf("BlocksHTML() = %q, want only the text block", got)
	}
}
