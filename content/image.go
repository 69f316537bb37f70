package content

import (
	"fmt"
	"net/url"
	"strings"
)

// ImageBuilder constructs CDN URLs for stored image references. Resizing is
// delegated to the content store's image pipeline; no local processing
// happens. The builder is deterministic: same reference and dimensions always
// produce the same URL, so downstream CDNs can cache freely.
type ImageBuilder struct {
	projectID string
	dataset   string
}

func NewImageBuilder(projectID, dataset string) ImageBuilder {
	return ImageBuilder{projectID: projectID, dataset: dataset}
}

// Image starts a request for the given asset reference. References look like
// "image-<id>-<width>x<height>-<format>". Callers must check presence before
// building; a malformed reference is an error, not a fallback.
func (b ImageBuilder) Image(ref string) ImageRequest {
	return ImageRequest{builder: b, ref: ref}
}

// ImageRequest accumulates target dimensions before producing a URL.
type ImageRequest struct {
	builder ImageBuilder
	ref     string
	width   int
	height  int
}

func (r ImageRequest) Width(w int) ImageRequest {
	r.width = w
	return r
}

func (r ImageRequest) Height(h int) ImageRequest {
	r.height = h
	return r
}

// URL resolves the request to a fully qualified CDN URL.
func (r ImageRequest) URL() (string, error) {
	id, dims, format, err := parseRef(r.ref)
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		r.builder.projectID, r.builder.dataset, id, dims, format)

	if r.width > 0 || r.height > 0 {
		params := url.Values{}
		if r.width > 0 {
			params.Set("w", fmt.Sprint(r.width))
		}
		if r.height > 0 {
			params.Set("h", fmt.Sprint(r.height))
		}
		params.Set("fit", "crop")
		u += "?" + params.Encode()
	}

	return u, nil
}

// parseRef splits "image-<id>-<WxH>-<format>" into its parts. The id itself
// may contain no dashes; the dimension and format segments are always the
// last two.
func parseRef(ref string) (id, dims, format string, err error) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", "", "", fmt.Errorf("malformed image reference %q", ref)
	}
	id, dims, format = parts[1], parts[2], parts[3]
	if id == "" || dims == "" || format == "" || !strings.Contains(dims, "x") {
		return "", "", "", fmt.Errorf("malformed image reference %q", ref)
	}
	return id, dims, format, nil
}
