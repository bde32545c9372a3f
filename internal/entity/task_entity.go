package entity

import (
	"time"
)

type Task struct {
	Id        uint
	Name      string
	Content   *string
	Complete  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}
