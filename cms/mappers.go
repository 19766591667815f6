package cms

import (
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// Mapper converts raw CMS documents into the view models the rest of the
// application consumes. All mappings are pure; the only failure mode is the
// homepage's mandatory headshot.
type Mapper struct {
	images ImageResolver
}

func NewMapper(images ImageResolver) Mapper {
	return Mapper{images: images}
}

// MapHomepage maps the homepage singleton. A missing or unresolvable
// headshot is a configuration error: the page cannot render without it.
func (m Mapper) MapHomepage(doc models.RawHomepage) (models.Homepage, error) {
	headshot := m.images.Resolve(doc.Headshot, "Professional headshot")
	if headshot == nil {
		return models.Homepage{}, errs.NewConfigError("headshot", "homepage headshot is required")
	}

	homepage := models.Homepage{
		Name:     doc.Name,
		Title:    doc.Title,
		Tagline:  doc.Tagline,
		Headshot: *headshot,
		Bio:      doc.Bio,
	}
	if doc.SocialLinks != nil {
		homepage.SocialLinks = *doc.SocialLinks
	}
	if doc.Contact != nil {
		homepage.Contact = *doc.Contact
	}
	return homepage, nil
}

// MapPost maps a blog post document. An unresolvable thumbnail leaves the
// field absent, never fails.
func (m Mapper) MapPost(doc models.RawPost) models.BlogPost {
	return models.BlogPost{
		ID:            doc.ID,
		Title:         doc.Title,
		Excerpt:       doc.Excerpt,
		Slug:          doc.Slug,
		PublishedDate: doc.PublishedDate,
		Thumbnail:     m.images.Resolve(doc.Thumbnail, doc.Title),
		Author:        doc.Author,
		ReadingTime:   doc.ReadingTime,
		Content:       doc.Content,
	}
}

// MapProject maps a project document. Gallery entries that fail to resolve
// are dropped so a project with placeholder images degrades instead of
// failing, but an absent images field stays absent: absent-in, absent-out.
func (m Mapper) MapProject(doc models.RawProject) models.Project {
	project := models.Project{
		ID:             doc.ID,
		Title:          doc.Title,
		Description:    doc.Description,
		Slug:           doc.Slug,
		Thumbnail:      m.images.Resolve(doc.Thumbnail, doc.Title),
		Featured:       doc.Featured,
		Technologies:   doc.Technologies,
		Link:           doc.Link,
		Content:        doc.Content,
		Challenge:      doc.Challenge,
		Solution:       doc.Solution,
		Outcomes:       doc.Outcomes,
		CompletionDate: doc.CompletionDate,
		ClientName:     doc.ClientName,
	}

	if project.Technologies == nil {
		project.Technologies = []string{}
	}

	if doc.Images != nil {
		images := make([]models.ProcessedImage, 0, len(doc.Images))
		for i := range doc.Images {
			if resolved := m.images.Resolve(&doc.Images[i], doc.Title); resolved != nil {
				images = append(images, *resolved)
			}
		}
		project.Images = images
	}

	return project
}

// MapPosts maps a document sequence in order, one output per input.
func (m Mapper) MapPosts(docs []models.RawPost) []models.BlogPost {
	posts := make([]models.BlogPost, len(docs))
	for i, doc := range docs {
		posts[i] = m.MapPost(doc)
	}
	return posts
}

// MapProjects maps a document sequence in order, one output per input.
func (m Mapper) MapProjects(docs []models.RawProject) []models.Project {
	projects := make([]models.Project, len(docs))
	for i, doc := range docs {
		projects[i] = m.MapProject(doc)
	}
	return projects
}
