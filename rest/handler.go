package rest

import (
	"errors"
	"net/http"
	"strconv"

	"edubrief/domain"
	"edubrief/logger"
	"edubrief/usecase"

	"github.com/labstack/echo/v4"
)

// Handler bundles the usecases behind the HTTP surface.
type Handler struct {
	Search    *usecase.SearchCollectionsUsecase
	Catalog   *usecase.ListCoursesUsecase
	Content   *usecase.ContentUsecase
	Contact   *usecase.SubmitContactUsecase
	Subscribe *usecase.SubscribeNewsletterUsecase
}

func RegisterRoutes(e *echo.Echo, h *Handler) {
	v1 := e.Group("/v1")

	v1.GET("/health", handleHealth)
	v1.GET("/search", h.handleSearch)
	v1.GET("/courses", h.handleCourses)
	v1.GET("/courses/:id", h.handleCourseByID)
	v1.GET("/posts", h.handlePosts)
	v1.GET("/posts/:slug", h.handlePostBySlug)
	v1.GET("/instructors", h.handleInstructors)
	v1.GET("/instructors/:slug", h.handleInstructorBySlug)
	v1.POST("/contact", h.handleContact)
	v1.POST("/subscribe", h.handleSubscribe)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) handleSearch(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing query parameter"})
	}

	res, err := h.Search.Execute(c.Request().Context(), query, c.QueryParam("collection"))
	if err != nil {
		return writeError(c, err, "Failed to perform search")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) handleCourses(c echo.Context) error {
	filter := usecase.CatalogFilter{
		Search:     c.QueryParam("search"),
		Difficulty: c.QueryParam("difficulty"),
		Tag:        c.QueryParam("tag"),
	}

	catalog, err := h.Catalog.Execute(c.Request().Context(), filter)
	if err != nil {
		return writeError(c, err, "Failed to load courses")
	}
	return c.JSON(http.StatusOK, catalog)
}

func (h *Handler) handleCourseByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid course id"})
	}

	course, err := h.Content.CourseByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, "Failed to load course")
	}
	return c.JSON(http.StatusOK, course)
}

func (h *Handler) handlePosts(c echo.Context) error {
	blog, err := h.Content.Blog(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Failed to load blog posts")
	}
	return c.JSON(http.StatusOK, blog)
}

func (h *Handler) handlePostBySlug(c echo.Context) error {
	post, err := h.Content.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err, "Failed to load blog post")
	}
	return c.JSON(http.StatusOK, post)
}

func (h *Handler) handleInstructors(c echo.Context) error {
	instructors, err := h.Content.Instructors(c.Request().Context())
	if err != nil {
		return writeError(c, err, "Failed to load instructors")
	}
	return c.JSON(http.StatusOK, instructors)
}

func (h *Handler) handleInstructorBySlug(c echo.Context) error {
	instructor, err := h.Content.InstructorBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err, "Failed to load instructor")
	}
	return c.JSON(http.StatusOK, instructor)
}

func (h *Handler) handleContact(c echo.Context) error {
	var sub domain.ContactSubmission
	if err := c.Bind(&sub); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := h.Contact.Execute(c.Request().Context(), sub, c.RealIP()); err != nil {
		return writeError(c, err, "Failed to send message. Please try again later.")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message sent successfully"})
}

func (h *Handler) handleSubscribe(c echo.Context) error {
	var req domain.SubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := h.Subscribe.Execute(c.Request().Context(), req); err != nil {
		return writeError(c, err, "Failed to subscribe. Please try again later.")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Successfully subscribed to the newsletter"})
}

// writeError maps domain error types onto HTTP responses. Upstream
// details stay in the logs; clients get the generic message.
func writeError(c echo.Context, err error, genericMsg string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	}

	var verr *domain.VerificationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Verification failed"})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	logger.Logger.Error("request failed",
		"path", c.Path(),
		"err", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": genericMsg})
}
