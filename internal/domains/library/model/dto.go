package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
	MaxAge               = 150
)

// AuthorRequest - POST /v1/authors, PUT /v1/authors/:id
type AuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       *int   `json:"age,omitempty"`
}

func (req AuthorRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.Age, validation.Min(0), validation.Max(MaxAge)),
	)
}

// Normalize trims surrounding whitespace from natural key fields
func (req *AuthorRequest) Normalize() {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
}

// GenreRequest - POST /v1/genres, PUT /v1/genres/:id
type GenreRequest struct {
	Name string `json:"name"`
}

func (req GenreRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, MaxNameLength)),
	)
}

func (req *GenreRequest) Normalize() {
	req.Name = strings.TrimSpace(req.Name)
}

// BookRequest - POST /v1/books, PUT /v1/books/:id
// Author and genre are referenced by natural key and created when missing.
type BookRequest struct {
	Title           string `json:"title"`
	AuthorFirstName string `json:"author_first_name"`
	AuthorLastName  string `json:"author_last_name"`
	Genre           string `json:"genre"`
}

func (req BookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.AuthorFirstName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.AuthorLastName, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.Genre, validation.Required, validation.Length(1, MaxNameLength)),
	)
}

func (req *BookRequest) Normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.AuthorFirstName = strings.TrimSpace(req.AuthorFirstName)
	req.AuthorLastName = strings.TrimSpace(req.AuthorLastName)
	req.Genre = strings.TrimSpace(req.Genre)
}

// CommentRequest - POST /v1/books/:id/comments, PUT /v1/comments/:id
type CommentRequest struct {
	Nickname    string `json:"nickname"`
	Description string `json:"description"`
}

func (req CommentRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Nickname, validation.Required, validation.Length(1, MaxNameLength)),
		validation.Field(&req.Description, validation.Required, validation.Length(1, MaxDescriptionLength)),
	)
}

func (req *CommentRequest) Normalize() {
	req.Nickname = strings.TrimSpace(req.Nickname)
	req.Description = strings.TrimSpace(req.Description)
}

// ImportResult summarizes a spreadsheet import
type ImportResult struct {
	TotalRows      int           `json:"total_rows"`
	Created        int           `json:"created"`
	AuthorsCreated int           `json:"authors_created"`
	GenresCreated  int           `json:"genres_created"`
	Errors         []ImportError `json:"errors,omitempty"`
}

type ImportError struct {
	Row    int    `json:"row"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}
