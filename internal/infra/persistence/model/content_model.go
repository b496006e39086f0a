package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentPostModel mirrors the 'content_posts' table. Posts outlive
// their author; the admin-only authorship rule is an application check.
type ContentPostModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Content       string     `gorm:"type:text;not null"`
	FeaturedImage string     `gorm:"type:varchar(255);not null"`
	AuthorID      *uuid.UUID `gorm:"type:uuid;index"`
	PublishedAt   time.Time  `gorm:"autoCreateTime"`
	PostType      string     `gorm:"type:varchar(50);not null;index"`

	Author *UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ContentPostModel) TableName() string {
	return "content_posts"
}
