package usecase

import (
	"context"
	"testing"

	"edubrief/domain"
)

func catalogFixture() []domain.Course {
	return []domain.Course{
		{ID: "1", Title: "Python for Beginners", Difficulty: []string{"Beginner"}, Tags: "python"},
		{ID: "2", Title: "Advanced Python Patterns", Difficulty: []string{"Advanced"}, Tags: "python"},
		{ID: "3", Title: "Go Fundamentals", Difficulty: []string{"Beginner", "Intermediate"}, Tags: "go"},
		{ID: "4", Title: "Data Science Bootcamp", Difficulty: []string{"Intermediate"}, Tags: "data"},
	}
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(catalogFixture())

	wantDifficulties := []string{"Beginner", "Advanced", "Intermediate"}
	if len(facets.Difficulties) != len(wantDifficulties) {
		t.Fatalf("Difficulties = %v, want %v", facets.Difficulties, wantDifficulties)
	}
	for i, want := range wantDifficulties {
		if facets.Difficulties[i] != want {
			t.Errorf("Difficulties[%d] = %s, want %s (first-seen order)", i, facets.Difficulties[i], want)
		}
	}

	wantTags := []string{"python", "go", "data"}
	if len(facets.Tags) != len(wantTags) {
		t.Fatalf("Tags = %v, want %v", facets.Tags, wantTags)
	}
	for i, want := range wantTags {
		if facets.Tags[i] != want {
			t.Errorf("Tags[%d] = %s, want %s", i, facets.Tags[i], want)
		}
	}
}

func TestDeriveFacets_Empty(t *testing.T) {
	facets := DeriveFacets(nil)
	if facets.Difficulties == nil || facets.Tags == nil {
		t.Error("facet lists must be empty, not nil")
	}
}

func TestApplyFilter(t *testing.T) {
	courses := catalogFixture()

	tests := []struct {
		name    string
		filter  CatalogFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns everything",
			filter:  CatalogFilter{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "title search is case-insensitive substring",
			filter:  CatalogFilter{Search: "PYTHON"},
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "difficulty is membership against the list",
			filter:  CatalogFilter{Difficulty: "Beginner"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "tag is exact match",
			filter:  CatalogFilter{Tag: "go"},
			wantIDs: []string{"3"},
		},
		{
			name:    "predicates combine with AND",
			filter:  CatalogFilter{Search: "python", Difficulty: "Advanced"},
			wantIDs: []string{"2"},
		},
		{
			name:    "conflicting predicates match nothing",
			filter:  CatalogFilter{Search: "python", Tag: "go"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(courses, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ApplyFilter() = %d courses, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ID != want {
					t.Errorf("ApplyFilter()[%d].ID = %s, want %s", i, got[i].ID, want)
				}
			}
		})
	}
}

func TestApplyFilter_ResultIsSubset(t *testing.T) {
	courses := catalogFixture()
	byID := map[string]bool{}
	for _, c := range courses {
		byID[c.ID] = true
	}

	filters := []CatalogFilter{
		{},
		{Search: "go"},
		{Difficulty: "Intermediate"},
		{Tag: "python"},
		{Search: "a", Difficulty: "Beginner", Tag: "python"},
	}

	for _, f := range filters {
		for _, c := range ApplyFilter(courses, f) {
			if !byID[c.ID] {
				t.Errorf("filter %+v produced course %s not in the input", f, c.ID)
			}
		}
	}
}

type mockContentSource struct {
	courses     []domain.Course
	coursesErr  error
	instructors []domain.Instructor
	posts       []domain.Post
	categories  []string
	course      *domain.Course
	post        *domain.Post
	instructor  *domain.Instructor
	err         error
}

func (m *mockContentSource) Courses(context.Context) ([]domain.Course, error) {
	return m.courses, m.coursesErr
}

func (m *mockContentSource) CourseByID(context.Context, int) (*domain.Course, error) {
	return m.course, m.err
}

func (m *mockContentSource) Posts(context.Context) ([]domain.Post, []string, error) {
	return m.posts, m.categories, m.err
}

func (m *mockContentSource) PostBySlug(context.Context, string) (*domain.Post, error) {
	return m.post, m.err
}

func (m *mockContentSource) Instructors(context.Context) ([]domain.Instructor, error) {
	return m.instructors, m.err
}

func (m *mockContentSource) InstructorBySlug(context.Context, string) (*domain.Instructor, error) {
	return m.instructor, m.err
}

func TestListCoursesUsecase_FacetsComeFromFullSet(t *testing.T) {
	u := NewListCoursesUsecase(&mockContentSource{courses: catalogFixture()})

	catalog, err := u.Execute(context.Background(), CatalogFilter{Tag: "go"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(catalog.Courses) != 1 {
		t.Errorf("filtered courses = %d, want 1", len(catalog.Courses))
	}
	// Facet options must not shrink when a facet filter is active.
	if len(catalog.Facets.Tags) != 3 {
		t.Errorf("tag facets = %v, want all 3 from the full set", catalog.Facets.Tags)
	}
	if len(catalog.Facets.Difficulties) != 3 {
		t.Errorf("difficulty facets = %v, want all 3 from the full set", catalog.Facets.Difficulties)
	}
}

func TestListCoursesUsecase_UpstreamFailure(t *testing.T) {
	u := NewListCoursesUsecase(&mockContentSource{
		coursesErr: &domain.UpstreamError{Service: "cms", Op: "Courses", Err: "unreachable"},
	})

	if _, err := u.Execute(context.Background(), CatalogFilter{}); err == nil {
		t.Fatal("Execute() expected error when the CMS is unreachable")
	}
}
