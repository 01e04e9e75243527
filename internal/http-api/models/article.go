package models

import "time"

type Article struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Excerpt     string    `json:"excerpt" gorm:"type:text"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	CoverImage  string    `json:"cover_image"`
	Category    string    `json:"category" gorm:"not null;index"`
	Tags        string    `json:"tags"`
	AuthorID    string    `json:"author_id" gorm:"type:uuid;not null;index"`
	Views       int64     `json:"views" gorm:"default:0;not null"`
	Likes       int64     `json:"likes" gorm:"default:0;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:true;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author User `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
}

func (Article) TableName() string {
	return "articles"
}
