package models

import "time"

// Comment belongs to exactly one of an article or a project. ParentID 0 means
// a top-level comment, anything else references another comment on the same
// target.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ArticleID *int64    `json:"article_id,omitempty" gorm:"index"`
	ProjectID *int64    `json:"project_id,omitempty" gorm:"index"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	ParentID  int64     `json:"parent_id" gorm:"default:0;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
