package model

import (
	"time"
)

// Note keeps an explicit deleted flag instead of gorm.DeletedAt so the
// unique index on name keeps covering soft-deleted rows.
type Note struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Deleted   bool      `gorm:"not null;default:false"`
}

func (Note) TableName() string {
	return "notes"
}
