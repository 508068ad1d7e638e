package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// extractImage returns the first direct image URL found in the entry's known
// media fields, scanned in priority order: media:content, media:thumbnail,
// enclosures, item image. A URL qualifies on its extension alone, no network
// validation is performed.
func extractImage(item *gofeed.Item) string {
	var candidates []string

	if media, ok := item.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, ext := range media[key] {
				if url := ext.Attrs["url"]; url != "" {
					candidates = append(candidates, url)
				}
			}
		}
	}

	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			candidates = append(candidates, enc.URL)
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		candidates = append(candidates, item.Image.URL)
	}

	for _, url := range candidates {
		if isImageURL(url) {
			return url
		}
	}
	return ""
}

// isImageURL reports whether the URL ends in a recognized raster-image
// extension, case-insensitive
func isImageURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
