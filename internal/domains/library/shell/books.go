package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

func (c *Commands) ListBooks(ctx context.Context, args []string) (string, error) {
	if err := shell.Parse(shell.NewFlagSet("books"), args); err != nil {
		return "", err
	}

	books, err := c.books.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return "No books found in the library.", nil
	}

	var sb strings.Builder
	sb.WriteString("Books in library:\n")
	for i, b := range books {
		fmt.Fprintf(&sb, "%d. ID: %d, Title: '%s', Author: %s, Genre: %s, Comments: %s\n",
			i+1, b.ID, b.Title, orUnknown(b.AuthorName()), orUnknown(b.GenreName()), commentCount(b))
	}
	return sb.String(), nil
}

func (c *Commands) GetBook(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("book")
	id := fs.Int64("id", 0, "book id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	b, err := c.books.GetByID(ctx, *id)
	if errors.Is(err, model.ErrBookNotFound) {
		return fmt.Sprintf("Book not found with id: %d", *id), nil
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Book ID: %d\n", b.ID)
	fmt.Fprintf(&sb, "Title: %s\n", b.Title)
	if b.Author != nil {
		fmt.Fprintf(&sb, "Author: %s", b.Author.FullName())
		if b.Author.Age != nil {
			fmt.Fprintf(&sb, " (Age: %d)", *b.Author.Age)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("Author: Unknown\n")
	}
	fmt.Fprintf(&sb, "Genre: %s\n", orUnknown(b.GenreName()))

	if len(b.Comments) == 0 {
		sb.WriteString("Comments: None\n")
		return sb.String(), nil
	}
	sb.WriteString("Comments:\n")
	for _, cm := range b.Comments {
		fmt.Fprintf(&sb, "  - %s: %s\n", cm.Nickname, cm.Description)
	}
	return sb.String(), nil
}

func (c *Commands) CreateBook(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("create-book")
	var req model.BookRequest
	fs.StringVar(&req.Title, "title", "", "book title")
	fs.StringVar(&req.AuthorFirstName, "author-first-name", "", "author first name")
	fs.StringVar(&req.AuthorLastName, "author-last-name", "", "author last name")
	fs.StringVar(&req.Genre, "genre", "", "genre name")
	if err := parseFlags(fs, args, "title", "author-first-name", "author-last-name", "genre"); err != nil {
		return "", err
	}

	b, err := c.books.Create(ctx, req)
	if err != nil {
		return "Error creating book: " + err.Error(), nil
	}
	return describeBook("Book created successfully", b), nil
}

func (c *Commands) UpdateBook(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("update-book")
	id := fs.Int64("id", 0, "book id")
	var req model.BookRequest
	fs.StringVar(&req.Title, "title", "", "book title")
	fs.StringVar(&req.AuthorFirstName, "author-first-name", "", "author first name")
	fs.StringVar(&req.AuthorLastName, "author-last-name", "", "author last name")
	fs.StringVar(&req.Genre, "genre", "", "genre name")
	if err := parseFlags(fs, args, "title", "author-first-name", "author-last-name", "genre"); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	b, err := c.books.Update(ctx, *id, req)
	if err != nil {
		return "Error: " + err.Error(), nil
	}
	return describeBook("Book updated successfully", b), nil
}

func (c *Commands) DeleteBook(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("delete-book")
	id := fs.Int64("id", 0, "book id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	if err := c.books.Delete(ctx, *id); err != nil {
		return "Error deleting book: " + err.Error(), nil
	}
	return fmt.Sprintf("Book deleted successfully with id: %d", *id), nil
}

func (c *Commands) SearchBooks(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("search-books")
	title := fs.String("title", "", "title fragment")
	if err := parseFlags(fs, args, "title"); err != nil {
		return "", err
	}

	books, err := c.books.FindByTitle(ctx, *title)
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return "No books found with title containing: " + *title, nil
	}
	return foundBooks(books), nil
}

func (c *Commands) BooksByAuthor(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("books-by-author")
	first := fs.String("first-name", "", "author first name")
	last := fs.String("last-name", "", "author last name")
	if err := parseFlags(fs, args, "first-name", "last-name"); err != nil {
		return "", err
	}

	books, err := c.books.FindByAuthor(ctx, *first, *last)
	if errors.Is(err, model.ErrAuthorNotFound) {
		return fmt.Sprintf("Author not found: %s %s", *first, *last), nil
	}
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return fmt.Sprintf("No books found for author: %s %s", *first, *last), nil
	}
	return foundBooks(books), nil
}

func (c *Commands) BooksByGenre(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("books-by-genre")
	name := fs.String("name", "", "genre name")
	if err := parseFlags(fs, args, "name"); err != nil {
		return "", err
	}

	books, err := c.books.FindByGenre(ctx, *name)
	if errors.Is(err, model.ErrGenreNotFound) {
		return "Genre not found: " + *name, nil
	}
	if err != nil {
		return "", err
	}
	if len(books) == 0 {
		return "No books found for genre: " + *name, nil
	}
	return foundBooks(books), nil
}

func (c *Commands) ImportBooks(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("import-books")
	path := fs.String("file", "", "xlsx workbook to read")
	if err := parseFlags(fs, args, "file"); err != nil {
		return "", err
	}

	f, err := os.Open(*path)
	if err != nil {
		return "Error importing books: " + err.Error(), nil
	}
	defer f.Close()

	result, err := c.books.Import(ctx, f)
	if errors.Is(err, model.ErrImportValidation) && result != nil {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Import rejected, %d error(s) in %d row(s):\n", len(result.Errors), result.TotalRows)
		for _, e := range result.Errors {
			if e.Field != "" {
				fmt.Fprintf(&sb, "  row %d, %s: %s\n", e.Row, e.Field, e.Reason)
			} else {
				fmt.Fprintf(&sb, "  row %d: %s\n", e.Row, e.Reason)
			}
		}
		return sb.String(), nil
	}
	if err != nil {
		return "Error importing books: " + err.Error(), nil
	}

	return fmt.Sprintf("Imported %d book(s) from %s\nAuthors created: %d\nGenres created: %d",
		result.Created, *path, result.AuthorsCreated, result.GenresCreated), nil
}

func (c *Commands) ExportBooks(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("export-books")
	path := fs.String("file", "", "xlsx workbook to write")
	if err := parseFlags(fs, args, "file"); err != nil {
		return "", err
	}

	f, err := os.Create(*path)
	if err != nil {
		return "Error exporting books: " + err.Error(), nil
	}

	n, err := c.books.Export(ctx, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "Error exporting books: " + err.Error(), nil
	}
	return fmt.Sprintf("Exported %d book(s) to %s", n, *path), nil
}

func describeBook(header string, b *model.Book) string {
	return fmt.Sprintf("%s:\nID: %d\nTitle: %s\nAuthor: %s\nGenre: %s",
		header, b.ID, b.Title, orUnknown(b.AuthorName()), orUnknown(b.GenreName()))
}

func foundBooks(books []model.Book) string {
	var sb strings.Builder
	sb.WriteString("Found books:\n")
	for i, b := range books {
		fmt.Fprintf(&sb, "%d. ID: %d, Title: '%s'", i+1, b.ID, b.Title)
		if name := b.AuthorName(); name != "" {
			fmt.Fprintf(&sb, ", Author: %s", name)
		}
		if genre := b.GenreName(); genre != "" {
			fmt.Fprintf(&sb, ", Genre: %s", genre)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func commentCount(b model.Book) string {
	if len(b.Comments) == 0 {
		return "None"
	}
	return fmt.Sprintf("%d comment(s)", len(b.Comments))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
