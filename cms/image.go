package cms

import (
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-backend/models"
)

// ImageResolver turns raw CMS image references into fetchable CDN URLs. The
// same reference always resolves to the same URL; nothing is fetched or
// cached here.
type ImageResolver struct {
	projectID string
	dataset   string
}

func NewImageResolver(projectID, dataset string) ImageResolver {
	return ImageResolver{projectID: projectID, dataset: dataset}
}

// Resolve maps an image reference to a ProcessedImage. A nil reference, a
// reference without an asset, or an asset whose ref does not parse all yield
// nil; optional image slots are legitimately empty. Alt falls back to
// fallbackAlt when the source has none.
func (r ImageResolver) Resolve(img *models.ImageRef, fallbackAlt string) *models.ProcessedImage {
	if img == nil || img.Asset == nil || img.Asset.Ref == "" {
		return nil
	}

	url, ok := r.assetURL(img.Asset.Ref)
	if !ok {
		return nil
	}

	alt := img.Alt
	if alt == "" {
		alt = fallbackAlt
	}

	return &models.ProcessedImage{URL: url, Alt: alt}
}

// assetURL rewrites an asset ref of the form image-<id>-<WxH>-<format> into
// the CDN URL https://cdn.sanity.io/images/<project>/<dataset>/<id>-<WxH>.<format>.
func (r ImageResolver) assetURL(ref string) (string, bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", false
	}

	id, dimensions, format := parts[1], parts[2], parts[3]
	if id == "" || dimensions == "" || format == "" {
		return "", false
	}

	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		r.projectID, r.dataset, id, dimensions, format), true
}
