package render

import (
	"html/template"
	"strings"

	"github.com/rinilkunhiraman/portfolio-2026/models"
)

// BlocksHTML renders a rich-text block tree to markup: paragraphs, h3/h4
// headings, bullet and numbered lists, with strong/em/code decorators and
// link annotations on spans. Consecutive list blocks of the same kind are
// grouped under one list element.
func BlocksHTML(blocks []models.Block) template.HTML {
	var sb strings.Builder
	var openList string // "", "bullet" or "number"

	closeList := func() {
		switch openList {
		case "bullet":
			sb.WriteString("</ul>\n")
		case "number":
			sb.WriteString("</ol>\n")
		}
		openList = ""
	}

	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}

		if block.ListItem != "" {
			if openList != block.ListItem {
				closeList()
				if block.ListItem == "number" {
					sb.WriteString("<ol>\n")
				} else {
					sb.WriteString("<ul>\n")
				}
				openList = block.ListItem
			}
			sb.WriteString("<li>")
			writeSpans(&sb, block)
			sb.WriteString("</li>\n")
			continue
		}

		closeList()
		tag := blockTag(block.Style)
		sb.WriteString("<" + tag + ">")
		writeSpans(&sb, block)
		sb.WriteString("</" + tag + ">\n")
	}
	closeList()

	return template.HTML(sb.String())
}

func blockTag(style string) string {
	switch style {
	case "h3":
		return "h3"
	case "h4":
		return "h4"
	default:
		return "p"
	}
}

func writeSpans(sb *strings.Builder, block models.Block) {
	for _, span := range block.Children {
		writeSpan(sb, span, block.MarkDefs)
	}
}

// writeSpan wraps the escaped text in one tag per mark. Marks that match a
// mark definition key become links; unknown decorators are ignored.
func writeSpan(sb *strings.Builder, span models.Span, defs []models.MarkDef) {
	var open, close []string
	for _, mark := range span.Marks {
		switch mark {
		case "strong":
			open = append(open, "<strong>")
			close = append([]string{"</strong>"}, close...)
		case "em":
			open = append(open, "<em>")
			close = append([]string{"</em>"}, close...)
		case "code":
			open = append(open, "<code>")
			close = append([]string{"</code>"}, close...)
		default:
			if def := findMarkDef(defs, mark); def != nil && def.Type == "link" && def.Href != "" {
				open = append(open, `<a href="`+template.HTMLEscapeString(def.Href)+`" rel="noopener noreferrer">`)
				close = append([]string{"</a>"}, close...)
			}
		}
	}

	for _, tag := range open {
		sb.WriteString(tag)
	}
	sb.WriteString(template.HTMLEscapeString(span.Text))
	for _, tag := range close {
		sb.WriteString(tag)
	}
}

func findMarkDef(defs []models.MarkDef, key string) *models.MarkDef {
	for i := range defs {
		if defs[i].Key == key {
			return &defs[i]
		}
	}
	return nil
}
