package models

import "time"

// ConfigEntry is an operator-managed key/value setting, e.g. the external AI
// provider credential.
type ConfigEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:255;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConfigEntry) TableName() string {
	return "config"
}
