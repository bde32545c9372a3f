package model

// Setting is the generic key/value row behind the internal admin endpoints.
// It is hard-deleted; soft-delete semantics apply to notes and tasks only.
type Setting struct {
	Id    uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Value int64  `gorm:"not null"`
}

func (Setting) TableName() string {
	return "internal"
}
