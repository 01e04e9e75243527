package models

import "time"

type Project struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Content     string    `json:"content" gorm:"type:text"`
	Image       string    `json:"image"`
	DemoURL     string    `json:"demo_url"`
	GithubURL   string    `json:"github_url"`
	TechStack   string    `json:"tech_stack"`
	Featured    bool      `json:"featured" gorm:"default:false;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Project) TableName() string {
	return "projects"
}
