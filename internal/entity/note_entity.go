package entity

import (
	"time"
)

type Note struct {
	Id        uint
	Name      string
	Content   *string
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}
