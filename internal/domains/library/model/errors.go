package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Not found
	ErrAuthorNotFound  = errors.New("author not found")
	ErrGenreNotFound   = errors.New("genre not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrCommentNotFound = errors.New("comment not found")

	// Business rules
	ErrDuplicateAuthor = errors.New("author with this name already exists")
	ErrDuplicateGenre  = errors.New("genre with this name already exists")
	ErrAuthorHasBooks  = errors.New("cannot delete author with linked books")
	ErrGenreHasBooks   = errors.New("cannot delete genre with linked books")

	// Import
	ErrInvalidImportFile = errors.New("invalid import file")
	ErrImportValidation  = errors.New("import file has invalid rows")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	var verrs validation.Errors
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrGenreNotFound):
		return "GENRE_NOT_FOUND"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrCommentNotFound):
		return "COMMENT_NOT_FOUND"
	case errors.Is(err, ErrDuplicateAuthor):
		return "DUPLICATE_AUTHOR"
	case errors.Is(err, ErrDuplicateGenre):
		return "DUPLICATE_GENRE"
	case errors.Is(err, ErrAuthorHasBooks):
		return "AUTHOR_HAS_BOOKS"
	case errors.Is(err, ErrGenreHasBooks):
		return "GENRE_HAS_BOOKS"
	case errors.Is(err, ErrInvalidImportFile):
		return "INVALID_FILE"
	case errors.Is(err, ErrImportValidation):
		return "IMPORT_VALIDATION_FAILED"
	case errors.As(err, &verrs):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrGenreNotFound),
		errors.Is(err, ErrBookNotFound),
		errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAuthor),
		errors.Is(err, ErrDuplicateGenre),
		errors.Is(err, ErrAuthorHasBooks),
		errors.Is(err, ErrGenreHasBooks):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidImportFile),
		errors.Is(err, ErrImportValidation),
		errors.As(err, &verrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
