package model

type Book struct {
	ID       int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string    `json:"title" gorm:"size:255;not null"`
	AuthorID int64     `json:"author_id" gorm:"not null;index"`
	GenreID  int64     `json:"genre_id" gorm:"not null;index"`
	Author   *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	Genre    *Genre    `json:"genre,omitempty" gorm:"foreignKey:GenreID;constraint:OnDelete:RESTRICT"`
	Comments []Comment `json:"comments" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

func (Book) TableName() string {
	return "book"
}

// AuthorName returns the author's full name or an empty string when not loaded
func (b Book) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.FullName()
}

func (b Book) GenreName() string {
	if b.Genre == nil {
		return ""
	}
	return b.Genre.Name
}
