package models

// SocialLinks holds the optional profile links shown on the homepage.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Contact holds the optional contact details shown on the homepage.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Location string `json:"location,omitempty"`
}

// RawHomepage is the homepage singleton document as returned by the CMS.
type RawHomepage struct {
	ID          string       `json:"_id"`
	Type        string       `json:"_type"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Tagline     string       `json:"tagline"`
	Headshot    *ImageRef    `json:"headshot"`
	Bio         string       `json:"bio"`
	SocialLinks *SocialLinks `json:"socialLinks,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
}

// Homepage is the mapped homepage content. Headshot is mandatory: the page
// cannot render without it, so mapping fails rather than producing a partial
// value.
type Homepage struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Tagline     string         `json:"tagline"`
	Headshot    ProcessedImage `json:"headshot"`
	Bio         string         `json:"bio"`
	SocialLinks SocialLinks    `json:"socialLinks"`
	Contact     Contact        `json:"contact"`
}
