package models

import "time"

// ChatHistory keeps one AI chat exchange per row; Messages holds the
// serialized conversation that was sent along with the request.
type ChatHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Messages  string    `gorm:"not null;type:text" json:"messages"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}
