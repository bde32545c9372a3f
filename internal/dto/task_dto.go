package dto

import (
	"time"
)

type ListTasksRequest struct {
	Name     *string `query:"name"`
	Content  *string `query:"content"`
	Complete *bool   `query:"complete"`
	Deleted  *bool   `query:"deleted"`
	Limit    int     `query:"limit" validate:"omitempty,gte=0,lte=1000"`
	Offset   int     `query:"offset" validate:"omitempty,gte=0"`
}

type CreateTaskRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Content  *string `json:"content"`
	Complete *bool   `json:"complete"`
}

type UpdateTaskRequest struct {
	Id       uint    `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	Complete *bool   `json:"complete"`
}

type TaskResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Content   *string   `json:"content"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted"`
}
