package content

import "testing"

func TestImageURL(t *testing.T) {
	builder := NewImageBuilder("proj123", "production")

	got, err := builder.Image("image-abc123-800x600-png").URL()
	if err != nil {
		t.Fatalf("URL() error: %v", err)
	}
	want := "https://cdn.sanity.io/images/proj123/production/abc123-800x600.png"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestImageURLWithDimensions(t *testing.T) {
	builder := NewImageBuilder("proj123", "production")

	got, err := builder.Image("image-abc123-800x600-png").Width(400).Height(300).URL()
	if err != nil {
		t.Fatalf("URL() error: %v", err)
	}
	want := "https://cdn.sanity.io/images/proj123/production/abc123-800x600.png?fit=crop&h=300&w=400"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestImageURLDeterministic(t *testing.T) {
	builder := NewImageBuilder("proj123", "production")

	first, err := builder.Image("image-abc123-1200x630-jpg").Width(1200).Height(630).URL()
	if err != nil {
		t.Fatalf("URL() error: %v", err)
	}
	second, err := builder.Image("image-abc123-1200x630-jpg").Width(1200).Height(630).URL()
	if err != nil {
		t.Fatalf("URL() error: %v", err)
	}
	if first != second {
		t.Errorf("same input produced different URLs: %q vs %q", first, second)
	}
}

func TestImageURLMalformedRef(t *testing.T) {
	builder := NewImageBuilder("proj123", "production")

	refs := []string{
		"",
		"image-abc123",
		"image-abc123-800x600",
		"file-abc123-800x600-png",
		"image-abc123-nodims-png",
		"image--800x600-png",
	}

	for _, ref := range refs {
		if _, err := builder.Image(ref).URL(); err == nil {
			t.Errorf("URL() for ref %q: expected error, got none", ref)
		}
	}
}
