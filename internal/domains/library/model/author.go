package model

import (
	"strconv"
	"strings"
)

type Author struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	LastName  string `json:"last_name" gorm:"column:last_name;size:255;not null;uniqueIndex:ux_author_full_name,priority:2"`
	FirstName string `json:"first_name" gorm:"column:first_name;size:255;not null;uniqueIndex:ux_author_full_name,priority:1"`
	Age       *int   `json:"age,omitempty" gorm:"column:age"`
}

func (Author) TableName() string {
	return "author"
}

// FullName is "First Last"
func (a Author) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// AgeString renders the age or N/A when unknown
func (a Author) AgeString() string {
	if a.Age == nil {
		return "N/A"
	}
	return strconv.Itoa(*a.Age)
}
