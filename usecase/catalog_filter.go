package usecase

import (
	"context"
	"slices"
	"strings"

	"edubrief/domain"
	"edubrief/port"
)

// CatalogFilter is the active narrowing state for the course catalog.
// Empty predicates are no-ops; active predicates combine with AND.
type CatalogFilter struct {
	Search     string
	Difficulty string
	Tag        string
}

// CourseCatalog is the filtered course list plus the facet values of the
// full (unfiltered) catalog.
type CourseCatalog struct {
	Courses []domain.Course      `json:"courses"`
	Facets  domain.CatalogFacets `json:"facets"`
}

// DeriveFacets collects the distinct difficulty values and tags present
// in the given course list, in first-seen order. Callers pass the full
// fetched list so facet options never shrink while filtering.
func DeriveFacets(courses []domain.Course) domain.CatalogFacets {
	facets := domain.CatalogFacets{
		Difficulties: []string{},
		Tags:         []string{},
	}

	for _, course := range courses {
		for _, d := range course.Difficulty {
			if d != "" && !slices.Contains(facets.Difficulties, d) {
				facets.Difficulties = append(facets.Difficulties, d)
			}
		}
		if course.Tags != "" && !slices.Contains(facets.Tags, course.Tags) {
			facets.Tags = append(facets.Tags, course.Tags)
		}
	}

	return facets
}

// ApplyFilter narrows courses by the active predicates: case-insensitive
// title substring, difficulty membership, exact tag match. Pure function
// of its inputs.
func ApplyFilter(courses []domain.Course, f CatalogFilter) []domain.Course {
	filtered := make([]domain.Course, 0, len(courses))
	search := strings.ToLower(f.Search)

	for _, course := range courses {
		if search != "" && !strings.Contains(strings.ToLower(course.Title), search) {
			continue
		}
		if f.Difficulty != "" && !slices.Contains(course.Difficulty, f.Difficulty) {
			continue
		}
		if f.Tag != "" && course.Tags != f.Tag {
			continue
		}
		filtered = append(filtered, course)
	}

	return filtered
}

// ListCoursesUsecase loads the full catalog from the CMS and filters it
// in-process. Facets are always derived from the unfiltered set.
type ListCoursesUsecase struct {
	content port.ContentSource
}

func NewListCoursesUsecase(content port.ContentSource) *ListCoursesUsecase {
	return &ListCoursesUsecase{content: content}
}

func (u *ListCoursesUsecase) Execute(ctx context.Context, filter CatalogFilter) (*CourseCatalog, error) {
	courses, err := u.content.Courses(ctx)
	if err != nil {
		return nil, err
	}

	return &CourseCatalog{
		Courses: ApplyFilter(courses, filter),
		Facets:  DeriveFacets(courses),
	}, nil
}
