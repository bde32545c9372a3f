package entity

type Setting struct {
	Id    uint
	Name  string
	Value int64
}
