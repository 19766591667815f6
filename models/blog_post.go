package models

// Slug wraps a URL slug the way the CMS stores it.
type Slug struct {
	Current string `json:"current"`
}

// RawPost is a blog post document as returned by the CMS. Slug arrives
// already de-wrapped when the query projects "slug": slug.current, so it is
// a plain string here.
type RawPost struct {
	ID            string    `json:"_id"`
	Type          string    `json:"_type"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Slug          string    `json:"slug"`
	PublishedDate string    `json:"publishedDate"`
	Thumbnail     *ImageRef `json:"thumbnail,omitempty"`
	Author        string    `json:"author"`
	ReadingTime   int       `json:"readingTime,omitempty"`
	Content       string    `json:"content"`
}

// BlogPost is the mapped blog post view model. ID is the CMS-internal key;
// Slug is the externally addressable one.
type BlogPost struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Excerpt       string          `json:"excerpt"`
	Slug          string          `json:"slug"`
	PublishedDate string          `json:"publishedDate"`
	Thumbnail     *ProcessedImage `json:"thumbnail,omitempty"`
	Author        string          `json:"author"`
	ReadingTime   int             `json:"readingTime,omitempty"`
	Content       string          `json:"content"`
}
