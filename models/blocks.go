package models

import "strings"

// Block is one node of a rich-text field (portable-text shaped). Styles are
// "normal", "h3" or "h4"; list blocks carry a listItem of "bullet" or "number".
type Block struct {
	Type     string    `json:"_type"`
	Key      string    `json:"_key,omitempty"`
	Style    string    `json:"style,omitempty"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children,omitempty"`
	MarkDefs []MarkDef `json:"markDefs,omitempty"`
}

// Span is an inline run of text inside a block. Marks are either decorators
// ("strong", "em", "code") or the key of a MarkDef on the enclosing block.
type Span struct {
	Type  string   `json:"_type"`
	Key   string   `json:"_key,omitempty"`
	Text  string   `json:"text"`
	Marks []string `json:"marks,omitempty"`
}

// MarkDef is an annotation referenced by span marks, currently only links.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Text returns the concatenated span text of a single block.
func (b Block) Text() string {
	var sb strings.Builder
	for _, child := range b.Children {
		sb.WriteString(child.Text)
	}
	return sb.String()
}

// PlainText flattens a block sequence to text, blocks separated by blank lines.
func PlainText(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if t := b.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Slug is a stored URL fragment.
type Slug struct {
	Current string `json:"current"`
}

// Image is a stored image reference with optional alt text. The asset is
// resolved by the content store's image CDN; see content.ImageBuilder.
type Image struct {
	Asset ImageAsset `json:"asset"`
	Alt   string     `json:"alt,omitempty"`
}

// ImageAsset holds the opaque asset identifier. Queries that dereference the
// asset return _id (and a direct url); raw references carry _ref. Both hold
// the same identifier format.
type ImageAsset struct {
	Ref string `json:"_ref,omitempty"`
	ID  string `json:"_id,omitempty"`
	URL string `json:"url,omitempty"`
}

// Ref returns the asset identifier regardless of how the query shaped it,
// or "" when the image has no asset.
func (i *Image) Ref() string {
	if i == nil {
		return ""
	}
	if i.Asset.Ref != "" {
		return i.Asset.Ref
	}
	return i.Asset.ID
}

// File is a stored file reference (resume download).
type File struct {
	Asset FileAsset `json:"asset"`
}

type FileAsset struct {
	ID  string `json:"_id,omitempty"`
	URL string `json:"url,omitempty"`
}
