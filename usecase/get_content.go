package usecase

import (
	"context"

	"edubrief/domain"
	"edubrief/port"
)

// BlogIndex is the blog listing: latest posts plus the CMS category list
// used by the category selector.
type BlogIndex struct {
	Posts      []domain.Post `json:"posts"`
	Categories []string      `json:"categories"`
}

// ContentUsecase serves content reads. Each call re-fetches from the CMS;
// nothing is cached between requests.
type ContentUsecase struct {
	content port.ContentSource
}

func NewContentUsecase(content port.ContentSource) *ContentUsecase {
	return &ContentUsecase{content: content}
}

func (u *ContentUsecase) CourseByID(ctx context.Context, databaseID int) (*domain.Course, error) {
	return u.content.CourseByID(ctx, databaseID)
}

func (u *ContentUsecase) Blog(ctx context.Context) (*BlogIndex, error) {
	posts, categories, err := u.content.Posts(ctx)
	if err != nil {
		return nil, err
	}
	return &BlogIndex{Posts: posts, Categories: categories}, nil
}

func (u *ContentUsecase) PostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	return u.content.PostBySlug(ctx, slug)
}

func (u *ContentUsecase) Instructors(ctx context.Context) ([]domain.Instructor, error) {
	return u.content.Instructors(ctx)
}

func (u *ContentUsecase) InstructorBySlug(ctx context.Context, slug string) (*domain.Instructor, error) {
	return u.content.InstructorBySlug(ctx, slug)
}
