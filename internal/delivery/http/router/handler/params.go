// Package handler contains the HTTP handlers for the admin console.
package handler

import (
	"strconv"

	"givebox/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pageFromQuery reads the common page/per_page query parameters.
// Malformed values fall back to the repository defaults.
func pageFromQuery(c echo.Context) repository.Page {
	var page repository.Page
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		page.Number = v
	}
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil {
		page.Size = v
	}

	return page
}

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}

	return id, nil
}

// optionalUUIDQuery parses an optional UUID query parameter. An absent
// parameter yields nil; a malformed one yields an error.
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	return &id, nil
}

// optionalBoolQuery parses an optional boolean query parameter.
func optionalBoolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &v
}

// optionalIntQuery parses an optional integer query parameter.
func optionalIntQuery(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &v
}

// bindAndValidate binds the request body and runs struct validation.
// Handlers answer a non-nil error with response.BindingError.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(err, "bind request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}
