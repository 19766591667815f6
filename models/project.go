package models

// RawProject is a project case-study document as returned by the CMS.
type RawProject struct {
	ID             string     `json:"_id"`
	Type           string     `json:"_type"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Slug           string     `json:"slug"`
	Thumbnail      *ImageRef  `json:"thumbnail,omitempty"`
	Featured       bool       `json:"featured"`
	Technologies   []string   `json:"technologies,omitempty"`
	Link           string     `json:"link,omitempty"`
	Content        string     `json:"content"`
	Challenge      string     `json:"challenge"`
	Solution       string     `json:"solution"`
	Outcomes       []string   `json:"outcomes"`
	Images         []ImageRef `json:"images,omitempty"`
	CompletionDate string     `json:"completionDate"`
	ClientName     string     `json:"clientName,omitempty"`
}

// Project is the mapped project view model. Images stays nil when the source
// document has no images field at all; a present-but-unusable gallery maps to
// an empty slice instead.
type Project struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Slug           string           `json:"slug"`
	Thumbnail      *ProcessedImage  `json:"thumbnail,omitempty"`
	Featured       bool             `json:"featured"`
	Technologies   []string         `json:"technologies"`
	Link           string           `json:"link,omitempty"`
	Content        string           `json:"content"`
	Challenge      string           `json:"challenge"`
	Solution       string           `json:"solution"`
	Outcomes       []string         `json:"outcomes"`
	Images         []ProcessedImage `json:"images,omitempty"`
	CompletionDate string           `json:"completionDate"`
	ClientName     string           `json:"clientName,omitempty"`
}

// SlugEntry is the projection used for route enumeration: slug only.
type SlugEntry struct {
	Slug string `json:"slug"`
}
