package model

type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex:ux_genre_name"`
}

func (Genre) TableName() string {
	return "genre"
}
