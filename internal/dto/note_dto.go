package dto

import (
	"time"
)

type ListNotesRequest struct {
	Name    *string `query:"name"`
	Content *string `query:"content"`
	Deleted *bool   `query:"deleted"`
	Limit   int     `query:"limit" validate:"omitempty,gte=0,lte=1000"`
	Offset  int     `query:"offset" validate:"omitempty,gte=0"`
}

type CreateNoteRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Content *string `json:"content"`
}

type UpdateNoteRequest struct {
	Id      uint    `json:"id" validate:"required"`
	Name    *string `json:"name" validate:"omitempty,max=255"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted"`
}
