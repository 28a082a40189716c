package media

import (
	"fmt"
	"path"
	"strings"
)

// The generated size ladder. A variant is produced only when the source is
// larger than its bound; "full" is always present.
var sizeLadder = []struct {
	slug string
	max  int
}{
	{"thumbnail", 150},
	{"medium", 300},
	{"large", 1024},
}

// SlugFull is the unscaled rendition every item carries.
const SlugFull = "full"

// BuildSizes computes the size variants for a source image.
func BuildSizes(url string, width, height int) map[string]SizeVariant {
	sizes := map[string]SizeVariant{
		SlugFull: {Slug: SlugFull, URL: url, Width: width, Height: height},
	}
	for _, s := range sizeLadder {
		if width <= s.max && height <= s.max {
			continue
		}
		w, h := ScaleWithin(width, height, s.max)
		sizes[s.slug] = SizeVariant{
			Slug:   s.slug,
			URL:    variantURL(url, w, h),
			Width:  w,
			Height: h,
		}
	}
	return sizes
}

// ScaleWithin shrinks (w, h) proportionally so both fit within max.
// Dimensions already within the bound are returned unchanged. The scaled
// result never drops below 1 in either dimension.
func ScaleWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		scaled := h * max / w
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}
	scaled := w * max / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}

// ConstrainDimensions scales (w, h) to the requested width, preserving the
// aspect ratio. A zero or negative width returns the original dimensions.
func ConstrainDimensions(w, h, targetWidth int) (int, int) {
	if targetWidth <= 0 || w <= 0 {
		return w, h
	}
	scaled := h * targetWidth / w
	if scaled < 1 {
		scaled = 1
	}
	return targetWidth, scaled
}

// variantURL derives a rendition URL in the conventional
// name-WxH.ext form.
func variantURL(url string, w, h int) string {
	ext := path.Ext(url)
	base := strings.TrimSuffix(url, ext)
	return fmt.Sprintf("%s-%dx%d%s", base, w, h, ext)
}
