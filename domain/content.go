package domain

// Course is a CMS-authored course node. The front-end holds a read-only,
// request-scoped copy; nothing is cached across requests.
type Course struct {
	ID         string   `json:"id"`
	DatabaseID int      `json:"databaseId"`
	Title      string   `json:"title"`
	Content    string   `json:"content,omitempty"`
	Difficulty []string `json:"difficulty"`
	Duration   string   `json:"duration"`
	// Tags is a single scalar value in the CMS schema, not a list.
	Tags string `json:"tags"`
}

// Post is a CMS-authored blog post node.
type Post struct {
	ID            string   `json:"id"`
	DatabaseID    int      `json:"databaseId"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content,omitempty"`
	Date          string   `json:"date"`
	Categories    []string `json:"categories"`
	Tags          []string `json:"tags,omitempty"`
	Author        string   `json:"author,omitempty"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
}

// SocialLinks holds an instructor's public profiles.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Instructor is a CMS-authored instructor profile node.
type Instructor struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Bio         string      `json:"bio"`
	Photo       string      `json:"photo,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks"`
	Courses     []Course    `json:"courses,omitempty"`
}

// CatalogFacets lists the selectable facet values present in the full
// course catalog. Always derived from the unfiltered list, so narrowing
// by one facet never removes other facet options.
type CatalogFacets struct {
	Difficulties []string `json:"difficulties"`
	Tags         []string `json:"tags"`
}
