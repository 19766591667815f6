package models

// AssetRef points at an image asset stored in the CMS. The Ref string is the
// CMS-internal identifier, e.g. "image-abc123-800x600-jpg".
type AssetRef struct {
	Ref  string `json:"_ref"`
	Type string `json:"_type,omitempty"`
}

// Hotspot marks the focal region of an image for art-directed crops.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Crop describes the fraction of each edge trimmed from an image.
type Crop struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// ImageRef is a raw image reference as stored in a CMS document, before URL
// resolution. Asset may be nil when an editor created the field but never
// uploaded an image.
type ImageRef struct {
	Asset   *AssetRef `json:"asset,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Hotspot *Hotspot  `json:"hotspot,omitempty"`
	Crop    *Crop     `json:"crop,omitempty"`
}

// ProcessedImage is an image ready for rendering: a fetchable CDN URL plus
// alt text (falling back to a caller-supplied default during mapping).
type ProcessedImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
