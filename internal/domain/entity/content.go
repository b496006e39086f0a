// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PostType categorizes published content.
type PostType string

const (
	// PostBlog is an ordinary blog article.
	PostBlog PostType = "BLOG"
	// PostNews is a news announcement.
	PostNews PostType = "NEWS"
	// PostReport is a charity transparency report.
	PostReport PostType = "REPORT"
)

// String returns the string representation of the PostType.
func (t PostType) String() string {
	return string(t)
}

// IsValid checks if the PostType is a valid value.
func (t PostType) IsValid() bool {
	switch t {
	case PostBlog, PostNews, PostReport:
		return true
	default:
		return false
	}
}

// ContentPost is an article published on the site. Only administrators
// author posts; the row survives author deletion with the reference
// cleared.
type ContentPost struct {
	ID            uuid.UUID
	Title         string
	Content       string
	FeaturedImage string
	AuthorID      *uuid.UUID
	PublishedAt   time.Time
	PostType      PostType
}
