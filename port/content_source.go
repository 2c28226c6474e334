package port

import (
	"context"

	"edubrief/domain"
)

// ContentSource reads content nodes from the headless CMS. Every call is
// a fresh fetch; implementations must not cache across requests.
type ContentSource interface {
	Courses(ctx context.Context) ([]domain.Course, error)
	CourseByID(ctx context.Context, databaseID int) (*domain.Course, error)
	Posts(ctx context.Context) ([]domain.Post, []string, error)
	PostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	Instructors(ctx context.Context) ([]domain.Instructor, error)
	InstructorBySlug(ctx context.Context, slug string) (*domain.Instructor, error)
}
