// Package cms provides a read-only GraphQL client for the headless CMS
// content API. Every call issues a fresh query; nothing is cached.
package cms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/machinebox/graphql"
)

type Client struct {
	gql *graphql.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		gql: graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient)),
	}
}

// CourseFields is the course custom-field group defined in the CMS.
type CourseFields struct {
	Difficulty []string `json:"difficulty"`
	Duration   string   `json:"duration"`
	Tags       string   `json:"tags"`
}

type CourseNode struct {
	ID         string       `json:"id"`
	DatabaseID int          `json:"databaseId"`
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	Courses    CourseFields `json:"courses"`
}

type CategoryNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MediaNode struct {
	SourceURL    string `json:"sourceUrl"`
	AltText      string `json:"altText"`
	MediaItemURL string `json:"mediaItemUrl"`
}

type PostNode struct {
	ID         string `json:"id"`
	DatabaseID int    `json:"databaseId"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Categories struct {
		Nodes []CategoryNode `json:"nodes"`
	} `json:"categories"`
	Tags struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"tags"`
	Author struct {
		Node struct {
			Name string `json:"name"`
		} `json:"node"`
	} `json:"author"`
	FeaturedImage struct {
		Node MediaNode `json:"node"`
	} `json:"featuredImage"`
}

type InstructorFields struct {
	Bio   string `json:"bio"`
	Photo struct {
		Node MediaNode `json:"node"`
	} `json:"photo"`
	SocialLinks struct {
		LinkedIn string `json:"linkedin"`
		Twitter  string `json:"twitter"`
		Website  string `json:"website"`
	} `json:"socialLinks"`
	Courses struct {
		Nodes []CourseNode `json:"nodes"`
	} `json:"courses"`
}

type InstructorNode struct {
	ID          string           `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Instructors InstructorFields `json:"instructors"`
}

const coursesQuery = `
query {
  courses(first: 100) {
    nodes {
      id
      databaseId
      title
      courses {
        difficulty
        duration
        tags
      }
    }
  }
}`

const courseByIDQuery = `
query ($id: ID!) {
  course(id: $id, idType: DATABASE_ID) {
    id
    databaseId
    title
    content
    courses {
      difficulty
      duration
      tags
    }
  }
}`

const postsQuery = `
query {
  posts(first: 20) {
    nodes {
      id
      databaseId
      title
      slug
      excerpt
      date
      categories {
        nodes {
          id
          name
        }
      }
      featuredImage {
        node {
          sourceUrl
          altText
        }
      }
    }
  }
  categories {
    nodes {
      id
      name
    }
  }
}`

const postBySlugQuery = `
query ($slug: ID!) {
  post(id: $slug, idType: SLUG) {
    id
    databaseId
    title
    slug
    excerpt
    content
    date
    categories {
      nodes {
        id
        name
      }
    }
    tags {
      nodes {
        name
      }
    }
    author {
      node {
        name
      }
    }
    featuredImage {
      node {
        sourceUrl
        altText
      }
    }
  }
}`

const instructorsQuery = `
query {
  instructors(first: 100) {
    nodes {
      id
      slug
      title
      instructors {
        bio
        photo {
          node {
            mediaItemUrl
          }
        }
      }
    }
  }
}`

const instructorBySlugQuery = `
query ($slug: ID!) {
  instructor(id: $slug, idType: SLUG) {
    id
    slug
    title
    instructors {
      bio
      photo {
        node {
          mediaItemUrl
        }
      }
      socialLinks {
        linkedin
        twitter
        website
      }
      courses {
        nodes {
          ... on Course {
            id
            databaseId
            title
            courses {
              difficulty
              duration
              tags
            }
          }
        }
      }
    }
  }
}`

func (c *Client) Courses(ctx context.Context) ([]CourseNode, error) {
	var resp struct {
		Courses struct {
			Nodes []CourseNode `json:"nodes"`
		} `json:"courses"`
	}
	if err := c.gql.Run(ctx, graphql.NewRequest(coursesQuery), &resp); err != nil {
		return nil, fmt.Errorf("courses query: %w", err)
	}
	return resp.Courses.Nodes, nil
}

// CourseByID returns nil when no course carries the given database id.
func (c *Client) CourseByID(ctx context.Context, databaseID int) (*CourseNode, error) {
	req := graphql.NewRequest(courseByIDQuery)
	req.Var("id", databaseID)

	var resp struct {
		Course *CourseNode `json:"course"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("course query: %w", err)
	}
	return resp.Course, nil
}

// Posts returns the latest posts together with the CMS category list.
func (c *Client) Posts(ctx context.Context) ([]PostNode, []CategoryNode, error) {
	var resp struct {
		Posts struct {
			Nodes []PostNode `json:"nodes"`
		} `json:"posts"`
		Categories struct {
			Nodes []CategoryNode `json:"nodes"`
		} `json:"categories"`
	}
	if err := c.gql.Run(ctx, graphql.NewRequest(postsQuery), &resp); err != nil {
		return nil, nil, fmt.Errorf("posts query: %w", err)
	}
	return resp.Posts.Nodes, resp.Categories.Nodes, nil
}

func (c *Client) PostBySlug(ctx context.Context, slug string) (*PostNode, error) {
	req := graphql.NewRequest(postBySlugQuery)
	req.Var("slug", slug)

	var resp struct {
		Post *PostNode `json:"post"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("post query: %w", err)
	}
	return resp.Post, nil
}

func (c *Client) Instructors(ctx context.Context) ([]InstructorNode, error) {
	var resp struct {
		Instructors struct {
			Nodes []InstructorNode `json:"nodes"`
		} `json:"instructors"`
	}
	if err := c.gql.Run(ctx, graphql.NewRequest(instructorsQuery), &resp); err != nil {
		return nil, fmt.Errorf("instructors query: %w", err)
	}
	return resp.Instructors.Nodes, nil
}

func (c *Client) InstructorBySlug(ctx context.Context, slug string) (*InstructorNode, error) {
	req := graphql.NewRequest(instructorBySlugQuery)
	req.Var("slug", slug)

	var resp struct {
		Instructor *InstructorNode `json:"instructor"`
	}
	if err := c.gql.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("instructor query: %w", err)
	}
	return resp.Instructor, nil
}
