package shell

import (
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/service"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

// Commands exposes the library services over the interactive shell.
// Domain failures are rendered as text; only malformed arguments return errors.
type Commands struct {
	books    service.BookService
	authors  service.AuthorService
	genres   service.GenreService
	comments service.CommentService
}

func NewCommands(books service.BookService, authors service.AuthorService, genres service.GenreService, comments service.CommentService) *Commands {
	return &Commands{
		books:    books,
		authors:  authors,
		genres:   genres,
		comments: comments,
	}
}

func (c *Commands) Commands() []shell.Command {
	return []shell.Command{
		// Books
		{Name: "books", Aliases: []string{"list-books"}, Help: "List all books", Run: c.ListBooks},
		{Name: "book", Aliases: []string{"get-book"}, Usage: "book --id N", Help: "Get book by ID", Run: c.GetBook},
		{
			Name:    "create-book",
			Aliases: []string{"add-book"},
			Usage:   "create-book --title T --author-first-name F --author-last-name L --genre G",
			Help:    "Create a new book",
			Run:     c.CreateBook,
		},
		{
			Name:    "update-book",
			Aliases: []string{"edit-book"},
			Usage:   "update-book --id N --title T --author-first-name F --author-last-name L --genre G",
			Help:    "Update a book",
			Run:     c.UpdateBook,
		},
		{Name: "delete-book", Aliases: []string{"remove-book"}, Usage: "delete-book --id N", Help: "Delete a book", Run: c.DeleteBook},
		{Name: "search-books", Aliases: []string{"find-books"}, Usage: "search-books --title T", Help: "Search books by title", Run: c.SearchBooks},
		{
			Name:  "books-by-author",
			Usage: "books-by-author --first-name F --last-name L",
			Help:  "List books of an author",
			Run:   c.BooksByAuthor,
		},
		{Name: "books-by-genre", Usage: "books-by-genre --name G", Help: "List books of a genre", Run: c.BooksByGenre},
		{Name: "import-books", Usage: "import-books --file books.xlsx", Help: "Import books from an xlsx workbook", Run: c.ImportBooks},
		{Name: "export-books", Usage: "export-books --file books.xlsx", Help: "Export all books to an xlsx workbook", Run: c.ExportBooks},

		// Authors
		{Name: "authors", Aliases: []string{"list-authors"}, Help: "List all authors", Run: c.ListAuthors},
		{
			Name:    "create-author",
			Aliases: []string{"add-author"},
			Usage:   "create-author --first-name F --last-name L [--age N]",
			Help:    "Create a new author",
			Run:     c.CreateAuthor,
		},
		{
			Name:  "update-author",
			Usage: "update-author --id N --first-name F --last-name L [--age N]",
			Help:  "Update an author",
			Run:   c.UpdateAuthor,
		},
		{Name: "delete-author", Usage: "delete-author --id N", Help: "Delete an author without books", Run: c.DeleteAuthor},

		// Genres
		{Name: "genres", Aliases: []string{"list-genres"}, Help: "List all genres", Run: c.ListGenres},
		{Name: "create-genre", Aliases: []string{"add-genre"}, Usage: "create-genre --name G", Help: "Create a new genre", Run: c.CreateGenre},
		{Name: "update-genre", Usage: "update-genre --id N --name G", Help: "Rename a genre", Run: c.UpdateGenre},
		{Name: "delete-genre", Usage: "delete-genre --id N", Help: "Delete a genre without books", Run: c.DeleteGenre},

		// Comments
		{Name: "comments", Aliases: []string{"list-comments"}, Help: "List all comments", Run: c.ListComments},
		{
			Name:    "add-comment",
			Aliases: []string{"create-comment"},
			Usage:   "add-comment --book-id N --nickname U --description D",
			Help:    "Add comment to book",
			Run:     c.AddComment,
		},
		{
			Name:  "update-comment",
			Usage: "update-comment --id N --nickname U --description D",
			Help:  "Edit a comment",
			Run:   c.UpdateComment,
		},
		{
			Name:    "remove-comment",
			Aliases: []string{"delete-comment"},
			Usage:   "remove-comment --book-id N --comment-id M",
			Help:    "Remove comment from book",
			Run:     c.RemoveComment,
		},
		{
			Name:    "book-comments",
			Aliases: []string{"list-book-comments"},
			Usage:   "book-comments --book-id N",
			Help:    "Get comments for book",
			Run:     c.BookComments,
		},
		{
			Name:    "search-comments",
			Aliases: []string{"find-comments"},
			Usage:   "search-comments --nickname U",
			Help:    "Search comments by nickname",
			Run:     c.SearchComments,
		},
	}
}
