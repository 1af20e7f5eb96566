package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/repository"
)

const (
	exportSheet   = "Books"
	maxImportRows = 1000
)

// Spreadsheet columns. Import only reads the ones listed in importColumns.
var exportHeaders = []string{"ID", "Title", "Author First Name", "Author Last Name", "Genre", "Comments"}

var importColumns = map[string]string{
	"title":             "title",
	"author first name": "author_first_name",
	"author last name":  "author_last_name",
	"genre":             "genre",
}

// Export writes every book to an xlsx workbook and returns the row count
func (s *bookService) Export(ctx context.Context, w io.Writer) (int, error) {
	books, err := s.store.Books().FindAll(ctx)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return 0, fmt.Errorf("failed to prepare sheet: %w", err)
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", last, style)
	}

	for i, b := range books {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		var first, last string
		if b.Author != nil {
			first, last = b.Author.FirstName, b.Author.LastName
		}
		row := []any{b.ID, b.Title, first, last, b.GenreName(), len(b.Comments)}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Info().Int("books", len(books)).Msg("Books exported")
	return len(books), nil
}

// Import reads books from the first sheet of an xlsx workbook.
// All rows are validated before anything is written; then every row is
// stored in one transaction, so the import either fully succeeds or changes nothing.
func (s *bookService) Import(ctx context.Context, r io.Reader) (*model.ImportResult, error) {
	rows, err := readImportRows(r)
	if err != nil {
		return nil, err
	}

	result := &model.ImportResult{TotalRows: len(rows)}
	if len(rows) > maxImportRows {
		return nil, fmt.Errorf("%w: file exceeds %d rows limit", model.ErrInvalidImportFile, maxImportRows)
	}

	for _, row := range rows {
		result.Errors = append(result.Errors, validateImportRow(row)...)
	}
	if len(result.Errors) > 0 {
		log.Warn().Int("error_count", len(result.Errors)).Msg("Book import validation failed")
		return result, model.ErrImportValidation
	}

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		authors := make(map[[2]string]int64)
		genres := make(map[string]int64)

		for _, row := range rows {
			req := row.req
			authorKey := [2]string{req.AuthorFirstName, req.AuthorLastName}

			authorID, ok := authors[authorKey]
			if !ok {
				if _, err := tx.Authors().FindByFullName(ctx, req.AuthorFirstName, req.AuthorLastName); errors.Is(err, model.ErrAuthorNotFound) {
					result.AuthorsCreated++
				}
				a, err := tx.Authors().FindOrCreateByFullName(ctx, req.AuthorFirstName, req.AuthorLastName)
				if err != nil {
					return fmt.Errorf("row %d: %w", row.number, err)
				}
				authorID = a.ID
				authors[authorKey] = authorID
			}

			genreID, ok := genres[req.Genre]
			if !ok {
				if _, err := tx.Genres().FindByName(ctx, req.Genre); errors.Is(err, model.ErrGenreNotFound) {
					result.GenresCreated++
				}
				g, err := tx.Genres().FindOrCreateByName(ctx, req.Genre)
				if err != nil {
					return fmt.Errorf("row %d: %w", row.number, err)
				}
				genreID = g.ID
				genres[req.Genre] = genreID
			}

			if _, err := tx.Books().Create(ctx, &model.Book{Title: req.Title, AuthorID: authorID, GenreID: genreID}); err != nil {
				return fmt.Errorf("row %d: %w", row.number, err)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("total_rows", result.TotalRows).
		Int("created", result.Created).
		Int("authors_created", result.AuthorsCreated).
		Int("genres_created", result.GenresCreated).
		Msg("Books imported")
	return result, nil
}

type importRow struct {
	number int
	req    model.BookRequest
}

func readImportRows(r io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidImportFile, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", model.ErrInvalidImportFile)
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidImportFile, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: missing header row", model.ErrInvalidImportFile)
	}

	colMap := make(map[string]int)
	for i, h := range raw[0] {
		if field, ok := importColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			colMap[field] = i
		}
	}
	for header, field := range importColumns {
		if _, ok := colMap[field]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", model.ErrInvalidImportFile, header)
		}
	}

	cell := func(record []string, field string) string {
		i := colMap[field]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]importRow, 0, len(raw)-1)
	for i, record := range raw[1:] {
		if isBlank(record) {
			continue
		}
		req := model.BookRequest{
			Title:           cell(record, "title"),
			AuthorFirstName: cell(record, "author_first_name"),
			AuthorLastName:  cell(record, "author_last_name"),
			Genre:           cell(record, "genre"),
		}
		req.Normalize()
		rows = append(rows, importRow{number: i + 2, req: req})
	}
	return rows, nil
}

func validateImportRow(row importRow) []model.ImportError {
	err := row.req.Validate()
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []model.ImportError{{Row: row.number, Reason: err.Error()}}
	}

	out := make([]model.ImportError, 0, len(verrs))
	for field, ferr := range verrs {
		out = append(out, model.ImportError{Row: row.number, Field: field, Reason: ferr.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
