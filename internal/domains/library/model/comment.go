package model

// Comment belongs to exactly one book. BookTitle is filled by reads only.
type Comment struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string `json:"description" gorm:"type:text;not null"`
	Nickname    string `json:"nickname" gorm:"size:255;not null;index"`
	BookID      int64  `json:"book_id" gorm:"not null;index"`
	BookTitle   string `json:"book_title,omitempty" gorm:"-"`
}

func (Comment) TableName() string {
	return "comment"
}
