package specification

import "gorm.io/gorm"

// CompleteIs filters tasks on the completion flag
type CompleteIs struct {
	Complete bool
}

func (s CompleteIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("complete = ?", s.Complete)
}
