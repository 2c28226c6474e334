package gateway

import (
	"context"

	"edubrief/domain"
	"edubrief/driver/cms"
)

// CMSDriver is the driver-level content interface this gateway adapts.
type CMSDriver interface {
	Courses(ctx context.Context) ([]cms.CourseNode, error)
	CourseByID(ctx context.Context, databaseID int) (*cms.CourseNode, error)
	Posts(ctx context.Context) ([]cms.PostNode, []cms.CategoryNode, error)
	PostBySlug(ctx context.Context, slug string) (*cms.PostNode, error)
	Instructors(ctx context.Context) ([]cms.InstructorNode, error)
	InstructorBySlug(ctx context.Context, slug string) (*cms.InstructorNode, error)
}

// ContentGateway converts CMS node shapes into domain types. Absent
// entities surface as domain.ErrNotFound, driver failures as
// domain.UpstreamError.
type ContentGateway struct {
	driver CMSDriver
}

func NewContentGateway(driver CMSDriver) *ContentGateway {
	return &ContentGateway{driver: driver}
}

func (g *ContentGateway) Courses(ctx context.Context) ([]domain.Course, error) {
	nodes, err := g.driver.Courses(ctx)
	if err != nil {
		return nil, g.upstream("Courses", err)
	}

	courses := make([]domain.Course, len(nodes))
	for i, n := range nodes {
		courses[i] = toCourse(n)
	}
	return courses, nil
}

func (g *ContentGateway) CourseByID(ctx context.Context, databaseID int) (*domain.Course, error) {
	node, err := g.driver.CourseByID(ctx, databaseID)
	if err != nil {
		return nil, g.upstream("CourseByID", err)
	}
	if node == nil {
		return nil, domain.ErrNotFound
	}
	course := toCourse(*node)
	return &course, nil
}

func (g *ContentGateway) Posts(ctx context.Context) ([]domain.Post, []string, error) {
	nodes, catNodes, err := g.driver.Posts(ctx)
	if err != nil {
		return nil, nil, g.upstream("Posts", err)
	}

	posts := make([]domain.Post, len(nodes))
	for i, n := range nodes {
		posts[i] = toPost(n)
	}

	categories := make([]string, len(catNodes))
	for i, c := range catNodes {
		categories[i] = c.Name
	}
	return posts, categories, nil
}

func (g *ContentGateway) PostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	node, err := g.driver.PostBySlug(ctx, slug)
	if err != nil {
		return nil, g.upstream("PostBySlug", err)
	}
	if node == nil {
		return nil, domain.ErrNotFound
	}
	post := toPost(*node)
	return &post, nil
}

func (g *ContentGateway) Instructors(ctx context.Context) ([]domain.Instructor, error) {
	nodes, err := g.driver.Instructors(ctx)
	if err != nil {
		return nil, g.upstream("Instructors", err)
	}

	instructors := make([]domain.Instructor, len(nodes))
	for i, n := range nodes {
		instructors[i] = toInstructor(n)
	}
	return instructors, nil
}

func (g *ContentGateway) InstructorBySlug(ctx context.Context, slug string) (*domain.Instructor, error) {
	node, err := g.driver.InstructorBySlug(ctx, slug)
	if err != nil {
		return nil, g.upstream("InstructorBySlug", err)
	}
	if node == nil {
		return nil, domain.ErrNotFound
	}
	instructor := toInstructor(*node)
	return &instructor, nil
}

func (g *ContentGateway) upstream(op string, err error) error {
	return &domain.UpstreamError{Service: "cms", Op: op, Err: err.Error()}
}

func toCourse(n cms.CourseNode) domain.Course {
	return domain.Course{
		ID:         n.ID,
		DatabaseID: n.DatabaseID,
		Title:      n.Title,
		Content:    n.Content,
		Difficulty: n.Courses.Difficulty,
		Duration:   n.Courses.Duration,
		Tags:       n.Courses.Tags,
	}
}

func toPost(n cms.PostNode) domain.Post {
	categories := make([]string, len(n.Categories.Nodes))
	for i, c := range n.Categories.Nodes {
		categories[i] = c.Name
	}

	var tags []string
	for _, t := range n.Tags.Nodes {
		tags = append(tags, t.Name)
	}

	return domain.Post{
		ID:            n.ID,
		DatabaseID:    n.DatabaseID,
		Title:         n.Title,
		Slug:          n.Slug,
		Excerpt:       n.Excerpt,
		Content:       n.Content,
		Date:          n.Date,
		Categories:    categories,
		Tags:          tags,
		Author:        n.Author.Node.Name,
		FeaturedImage: n.FeaturedImage.Node.SourceURL,
	}
}

func toInstructor(n cms.InstructorNode) domain.Instructor {
	var courses []domain.Course
	for _, c := range n.Instructors.Courses.Nodes {
		courses = append(courses, toCourse(c))
	}

	return domain.Instructor{
		ID:    n.ID,
		Slug:  n.Slug,
		Title: n.Title,
		Bio:   n.Instructors.Bio,
		Photo: n.Instructors.Photo.Node.MediaItemURL,
		SocialLinks: domain.SocialLinks{
			Twitter:  n.Instructors.SocialLinks.Twitter,
			LinkedIn: n.Instructors.SocialLinks.LinkedIn,
			Website:  n.Instructors.SocialLinks.Website,
		},
		Courses: courses,
	}
}
