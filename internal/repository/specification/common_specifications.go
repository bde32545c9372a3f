package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// ByID filters by ID
type ByID struct {
	ID uint
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// NameEquals filters on an exact name match
type NameEquals struct {
	Name string
}

func (s NameEquals) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// NameContains filters on a substring match against name
type NameContains struct {
	Fragment string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name LIKE ?", "%"+s.Fragment+"%")
}

// ContentContains filters on a substring match against content
type ContentContains struct {
	Fragment string
}

func (s ContentContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content LIKE ?", "%"+s.Fragment+"%")
}

// NotDeleted excludes soft-deleted rows. This is the default list predicate;
// the flag is explicit here because the models do not use gorm.DeletedAt.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}

// DeletedIs filters on the soft-delete flag when the caller asked for a
// specific value.
type DeletedIs struct {
	Deleted bool
}

func (s DeletedIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", s.Deleted)
}

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Pagination applies offset+limit. Callers pair it with OrderBy{Field: "id"}
// so pages stay deterministic across requests.
type Pagination struct {
	Limit  int
	Offset int
}

func (s Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit).Offset(s.Offset)
}
