package model

import (
	"time"
)

type Task struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Content   *string   `gorm:"type:text"`
	Complete  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	Deleted   bool      `gorm:"not null;default:false"`
}

func (Task) TableName() string {
	return "tasks"
}
