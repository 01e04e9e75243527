package models

import "time"

// Favorite rows target either an article or a project, never both, so the
// duplicate guard is a pair of partial unique indexes. A single composite
// index over the nullable pair would not work: Postgres treats NULLs as
// distinct, so (user, article, NULL) could be inserted twice.
type Favorite struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_article;uniqueIndex:idx_favorites_user_project" json:"user_id"`
	ArticleID *int64    `gorm:"uniqueIndex:idx_favorites_user_article,where:article_id IS NOT NULL" json:"article_id,omitempty"`
	ProjectID *int64    `gorm:"uniqueIndex:idx_favorites_user_project,where:project_id IS NOT NULL" json:"project_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Article *Article `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}
