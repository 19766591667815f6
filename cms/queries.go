package cms

// GROQ queries issued against the CMS query endpoint. Ordering and slicing
// happen in-query; slugs are de-wrapped via projection so raw documents
// arrive with a plain slug string.

const imageProjection = `asset, alt, hotspot, crop`

const postFields = `
  _id,
  _type,
  title,
  excerpt,
  "slug": slug.current,
  publishedDate,
  "thumbnail": thumbnail { ` + imageProjection + ` },
  author,
  readingTime,
  content
`

const projectFields = `
  _id,
  _type,
  title,
  description,
  "slug": slug.current,
  "thumbnail": thumbnail { ` + imageProjection + ` },
  featured,
  technologies,
  link,
  content,
  challenge,
  solution,
  outcomes,
  "images": images[] { ` + imageProjection + ` },
  completionDate,
  clientName
`

const homepageQuery = `*[_type == "homepage"][0] {
  _id,
  _type,
  name,
  title,
  tagline,
  "headshot": headshot { ` + imageProjection + ` },
  bio,
  socialLinks,
  contact
}`

const allPostsQuery = `*[_type == "post"] | order(publishedDate desc) { ` + postFields + ` }`

const postBySlugQuery = `*[_type == "post" && slug.current == $slug][0] { ` + postFields + ` }`

const recentPostsQuery = `*[_type == "post"] | order(publishedDate desc) [0...$limit] { ` + postFields + ` }`

const allPostSlugsQuery = `*[_type == "post"] { "slug": slug.current }`

const allProjectsQuery = `*[_type == "project"] | order(featured desc, completionDate desc) { ` + projectFields + ` }`

const projectBySlugQuery = `*[_type == "project" && slug.current == $slug][0] { ` + projectFields + ` }`

const featuredProjectsQuery = `*[_type == "project" && featured == true] | order(completionDate desc) [0...$limit] { ` + projectFields + ` }`

const allProjectSlugsQuery = `*[_type == "project"] { "slug": slug.current }`
