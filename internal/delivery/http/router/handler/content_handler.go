package handler

import (
	"log/slog"
	"net/http"

	"givebox/internal/delivery/http/response"
	"givebox/internal/domain/entity"
	"givebox/internal/domain/repository"
	"givebox/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for content post handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

type postRequest struct {
	Title         string     `json:"title" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	FeaturedImage string     `json:"featured_image"`
	AuthorID      *uuid.UUID `json:"author_id"`
	PostType      string     `json:"post_type" validate:"required"`
}

func (r postRequest) toInput() usecase.PostInput {
	return usecase.PostInput{
		Title:         r.Title,
		Content:       r.Content,
		FeaturedImage: r.FeaturedImage,
		AuthorID:      r.AuthorID,
		PostType:      entity.PostType(r.PostType),
	}
}

// ListPosts handles the paginated content post list view.
func (h *ContentHandler) ListPosts(c echo.Context) error {
	authorID, err := optionalUUIDQuery(c, "author_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid author ID")
	}

	query := repository.ListPostsQuery{
		Search:   c.QueryParam("search"),
		AuthorID: authorID,
		Page:     pageFromQuery(c),
	}
	if raw := c.QueryParam("post_type"); raw != "" {
		postType := entity.PostType(raw)
		query.PostType = &postType
	}

	output, err := h.uc.ListPosts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, output.Posts, output.Total)
}

// GetPost handles fetching a single post.
func (h *ContentHandler) GetPost(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	post, err := h.uc.GetPost(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// CreatePost handles creating a post. Only administrators may appear
// as the author.
func (h *ContentHandler) CreatePost(c echo.Context) error {
	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.CreatePost(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, post, "Post created successfully")
}

// UpdatePost handles the full edit of a post.
func (h *ContentHandler) UpdatePost(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "Post updated successfully")
}

// DeletePost handles removing a post.
func (h *ContentHandler) DeletePost(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	if err := h.uc.DeletePost(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}
