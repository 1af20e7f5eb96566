package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

func warAndPeace() model.BookRequest {
	return model.BookRequest{Title: "War and Peace", AuthorFirstName: "Leo", AuthorLastName: "Tolstoy", Genre: "Novel"}
}

func TestBookService_CreateReusesAuthorAndGenre(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewBookService(store)

	first, err := svc.Create(ctx, warAndPeace())
	require.NoError(t, err)

	req := warAndPeace()
	req.Title = "Anna Karenina"
	second, err := svc.Create(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.AuthorID, second.AuthorID)
	assert.Equal(t, first.GenreID, second.GenreID)
	assert.Equal(t, "Leo Tolstoy", second.AuthorName())
	assert.Equal(t, "Novel", second.GenreName())

	authors, err := store.Authors().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Nil(t, authors[0].Age)

	genres, err := store.Genres().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 1)

	books, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestBookService_CreateTrimsAndValidates(t *testing.T) {
	ctx := context.Background()
	svc := NewBookService(newTestStore(t))

	book, err := svc.Create(ctx, model.BookRequest{Title: " Dead Souls ", AuthorFirstName: " Nikolai", AuthorLastName: "Gogol ", Genre: " Satire "})
	require.NoError(t, err)
	assert.Equal(t, "Dead Souls", book.Title)
	assert.Equal(t, "Nikolai Gogol", book.AuthorName())
	assert.Equal(t, "Satire", book.GenreName())

	_, err = svc.Create(ctx, model.BookRequest{Title: "No author"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "author_first_name")
	assert.Contains(t, verrs, "genre")
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewBookService(store)

	book, err := svc.Create(ctx, warAndPeace())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, book.ID, model.BookRequest{Title: "The Seagull", AuthorFirstName: "Anton", AuthorLastName: "Chekhov", Genre: "Drama"})
	require.NoError(t, err)
	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, "Anton Chekhov", updated.AuthorName())
	assert.Equal(t, "Drama", updated.GenreName())

	authors, err := store.Authors().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	_, err = svc.Update(ctx, 9999, warAndPeace())
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	// a failed update must not leave new authors behind
	_, err = svc.Update(ctx, 9999, model.BookRequest{Title: "x", AuthorFirstName: "Ghost", AuthorLastName: "Writer", Genre: "Mystery"})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	_, err = store.Authors().FindByFullName(ctx, "Ghost", "Writer")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestBookService_DeleteRemovesComments(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := NewBookService(store)

	book, err := svc.Create(ctx, warAndPeace())
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, book.ID, model.CommentRequest{Nickname: "reader", Description: "long"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, book.ID))
	assert.ErrorIs(t, svc.Delete(ctx, book.ID), model.ErrBookNotFound)

	comments, err := store.Comments().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestBookService_Finders(t *testing.T) {
	ctx := context.Background()
	svc := NewBookService(newTestStore(t))

	for _, req := range []model.BookRequest{
		warAndPeace(),
		{Title: "Anna Karenina", AuthorFirstName: "Leo", AuthorLastName: "Tolstoy", Genre: "Novel"},
		{Title: "The Seagull", AuthorFirstName: "Anton", AuthorLastName: "Chekhov", Genre: "Drama"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	byTitle, err := svc.FindByTitle(ctx, "the")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "The Seagull", byTitle[0].Title)

	byTitle, err = svc.FindByTitle(ctx, "PEACE")
	require.NoError(t, err)
	assert.Len(t, byTitle, 1)

	byAuthor, err := svc.FindByAuthor(ctx, "Leo", "Tolstoy")
	require.NoError(t, err)
	require.Len(t, byAuthor, 2)
	assert.Equal(t, "Anna Karenina", byAuthor[0].Title)

	_, err = svc.FindByAuthor(ctx, "Ivan", "Bunin")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	byGenre, err := svc.FindByGenre(ctx, "Drama")
	require.NoError(t, err)
	assert.Len(t, byGenre, 1)

	_, err = svc.FindByGenre(ctx, "Poetry")
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
}

func TestBookService_Comments(t *testing.T) {
	ctx := context.Background()
	svc := NewBookService(newTestStore(t))

	book, err := svc.Create(ctx, warAndPeace())
	require.NoError(t, err)
	other, err := svc.Create(ctx, model.BookRequest{Title: "Other", AuthorFirstName: "A", AuthorLastName: "B", Genre: "C"})
	require.NoError(t, err)

	c, err := svc.AddComment(ctx, book.ID, model.CommentRequest{Nickname: " reader ", Description: "Great book"})
	require.NoError(t, err)
	assert.Equal(t, "reader", c.Nickname)
	assert.Equal(t, "War and Peace", c.BookTitle)

	_, err = svc.AddComment(ctx, 9999, model.CommentRequest{Nickname: "x", Description: "y"})
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	_, err = svc.AddComment(ctx, book.ID, model.CommentRequest{Nickname: "x"})
	assert.Error(t, err)

	comments, err := svc.GetComments(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = svc.GetComments(ctx, 9999)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	assert.ErrorIs(t, svc.RemoveComment(ctx, other.ID, c.ID), model.ErrCommentNotFound)
	require.NoError(t, svc.RemoveComment(ctx, book.ID, c.ID))
	assert.ErrorIs(t, svc.RemoveComment(ctx, book.ID, c.ID), model.ErrCommentNotFound)

	loaded, err := svc.GetByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Comments)
}
