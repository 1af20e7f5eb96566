package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
)

// storeFactory returns an empty store for one test
type storeFactory func(t *testing.T) Store

type contractOptions struct {
	// translatesDuplicates is false for drivers whose unique violations gorm cannot classify
	translatesDuplicates bool
}

func intPtr(n int) *int { return &n }

func runStoreContract(t *testing.T, newStore storeFactory, opts contractOptions) {
	t.Run("authors", func(t *testing.T) { testAuthors(t, newStore(t), opts) })
	t.Run("genres", func(t *testing.T) { testGenres(t, newStore(t), opts) })
	t.Run("find or create", func(t *testing.T) { testFindOrCreate(t, newStore(t)) })
	t.Run("books", func(t *testing.T) { testBooks(t, newStore(t)) })
	t.Run("comments", func(t *testing.T) { testComments(t, newStore(t)) })
	t.Run("transaction rollback", func(t *testing.T) { testRollback(t, newStore(t)) })
}

func testAuthors(t *testing.T, store Store, opts contractOptions) {
	ctx := context.Background()
	repo := store.Authors()

	created, err := repo.Create(ctx, &model.Author{FirstName: "Leo", LastName: "Tolstoy", Age: intPtr(82)})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	require.NotNil(t, got.Age)
	assert.Equal(t, 82, *got.Age)

	byName, err := repo.FindByFullName(ctx, "Leo", "Tolstoy")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.FindByFullName(ctx, "Leo", "Nobody")
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	if opts.translatesDuplicates {
		_, err = repo.Create(ctx, &model.Author{FirstName: "Leo", LastName: "Tolstoy"})
		assert.ErrorIs(t, err, model.ErrDuplicateAuthor)
	}

	updated, err := repo.Update(ctx, &model.Author{ID: created.ID, FirstName: "Lev", LastName: "Tolstoy"})
	require.NoError(t, err)
	assert.Equal(t, "Lev", updated.FirstName)
	assert.Nil(t, updated.Age)

	_, err = repo.Update(ctx, &model.Author{ID: 9999, FirstName: "X", LastName: "Y"})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	second, err := repo.Create(ctx, &model.Author{FirstName: "Fyodor", LastName: "Dostoevsky"})
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), model.ErrAuthorNotFound)
	_, err = repo.FindByID(ctx, second.ID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func testGenres(t *testing.T, store Store, opts contractOptions) {
	ctx := context.Background()
	repo := store.Genres()

	created, err := repo.Create(ctx, &model.Genre{Name: "Novel"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.FindByName(ctx, "Novel")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	if opts.translatesDuplicates {
		_, err = repo.Create(ctx, &model.Genre{Name: "Novel"})
		assert.ErrorIs(t, err, model.ErrDuplicateGenre)
	}

	updated, err := repo.Update(ctx, &model.Genre{ID: created.ID, Name: "Epic"})
	require.NoError(t, err)
	assert.Equal(t, "Epic", updated.Name)

	_, err = repo.Update(ctx, &model.Genre{ID: 9999, Name: "None"})
	assert.ErrorIs(t, err, model.ErrGenreNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), model.ErrGenreNotFound)
}

func testFindOrCreate(t *testing.T, store Store) {
	ctx := context.Background()

	first, err := store.Authors().FindOrCreateByFullName(ctx, "Anton", "Chekhov")
	require.NoError(t, err)
	again, err := store.Authors().FindOrCreateByFullName(ctx, "Anton", "Chekhov")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Nil(t, again.Age)

	g1, err := store.Genres().FindOrCreateByName(ctx, "Drama")
	require.NoError(t, err)
	g2, err := store.Genres().FindOrCreateByName(ctx, "Drama")
	require.NoError(t, err)
	assert.Equal(t, g1.ID, g2.ID)

	err = store.WithTx(ctx, func(tx Store) error {
		inTx, err := tx.Authors().FindOrCreateByFullName(ctx, "Anton", "Chekhov")
		if err != nil {
			return err
		}
		assert.Equal(t, first.ID, inTx.ID)
		return nil
	})
	require.NoError(t, err)

	authors, err := store.Authors().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 1)
	genres, err := store.Genres().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 1)
}

func seedBook(t *testing.T, store Store, title, first, last, genre string) *model.Book {
	t.Helper()
	ctx := context.Background()

	a, err := store.Authors().FindOrCreateByFullName(ctx, first, last)
	require.NoError(t, err)
	g, err := store.Genres().FindOrCreateByName(ctx, genre)
	require.NoError(t, err)
	b, err := store.Books().Create(ctx, &model.Book{Title: title, AuthorID: a.ID, GenreID: g.ID})
	require.NoError(t, err)
	return b
}

func testBooks(t *testing.T, store Store) {
	ctx := context.Background()
	repo := store.Books()

	war := seedBook(t, store, "War and Peace", "Leo", "Tolstoy", "Novel")
	anna := seedBook(t, store, "Anna Karenina", "Leo", "Tolstoy", "Novel")
	odds := seedBook(t, store, "100% Odds_and_Ends", "Anton", "Chekhov", "Stories")

	require.NotNil(t, war.Author)
	require.NotNil(t, war.Genre)
	assert.Equal(t, "Leo Tolstoy", war.AuthorName())
	assert.Equal(t, "Novel", war.GenreName())
	assert.Empty(t, war.Comments)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{odds.ID, anna.ID, war.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	found, err := repo.FindByTitle(ctx, "AND")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = repo.FindByTitle(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, odds.ID, found[0].ID)

	found, err = repo.FindByTitle(ctx, "s_a")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, odds.ID, found[0].ID)

	found, err = repo.FindByTitle(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	byAuthor, err := repo.FindByAuthorID(ctx, war.AuthorID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)
	n, err := repo.CountByAuthorID(ctx, war.AuthorID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	byGenre, err := repo.FindByGenreID(ctx, odds.GenreID)
	require.NoError(t, err)
	require.Len(t, byGenre, 1)
	n, err = repo.CountByGenreID(ctx, odds.GenreID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	updated, err := repo.Update(ctx, &model.Book{ID: anna.ID, Title: "Anna", AuthorID: odds.AuthorID, GenreID: odds.GenreID})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Title)
	assert.Equal(t, "Anton Chekhov", updated.AuthorName())

	_, err = repo.Update(ctx, &model.Book{ID: 9999, Title: "x", AuthorID: odds.AuthorID, GenreID: odds.GenreID})
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	_, err = store.Comments().Create(ctx, &model.Comment{Description: "classic", Nickname: "reader", BookID: war.ID})
	require.NoError(t, err)

	withComments, err := repo.FindByID(ctx, war.ID)
	require.NoError(t, err)
	require.Len(t, withComments.Comments, 1)
	assert.Equal(t, "War and Peace", withComments.Comments[0].BookTitle)

	require.NoError(t, repo.Delete(ctx, war.ID))
	_, err = repo.FindByID(ctx, war.ID)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, war.ID), model.ErrBookNotFound)

	remaining, err := store.Comments().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func testComments(t *testing.T, store Store) {
	ctx := context.Background()
	repo := store.Comments()

	book := seedBook(t, store, "Dead Souls", "Nikolai", "Gogol", "Satire")
	other := seedBook(t, store, "The Nose", "Nikolai", "Gogol", "Satire")

	c1, err := repo.Create(ctx, &model.Comment{Description: "funny", Nickname: "alice", BookID: book.ID})
	require.NoError(t, err)
	assert.Equal(t, "Dead Souls", c1.BookTitle)

	_, err = repo.Create(ctx, &model.Comment{Description: "strange", Nickname: "bob", BookID: other.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Comment{Description: "again", Nickname: "alice", BookID: other.ID})
	require.NoError(t, err)

	byNick, err := repo.FindByNickname(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, byNick, 2)
	assert.Equal(t, "Dead Souls", byNick[0].BookTitle)
	assert.Equal(t, "The Nose", byNick[1].BookTitle)

	none, err := repo.FindByNickname(ctx, "carol")
	require.NoError(t, err)
	assert.Empty(t, none)

	byBook, err := repo.FindByBookID(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, byBook, 2)

	updated, err := repo.Update(ctx, &model.Comment{ID: c1.ID, Description: "very funny", Nickname: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "very funny", updated.Description)
	assert.Equal(t, book.ID, updated.BookID)

	_, err = repo.Update(ctx, &model.Comment{ID: 9999, Description: "x", Nickname: "y"})
	assert.ErrorIs(t, err, model.ErrCommentNotFound)

	require.NoError(t, repo.Delete(ctx, c1.ID))
	_, err = repo.FindByID(ctx, c1.ID)
	assert.ErrorIs(t, err, model.ErrCommentNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, c1.ID), model.ErrCommentNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testRollback(t *testing.T, store Store) {
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.WithTx(ctx, func(tx Store) error {
		if _, err := tx.Authors().FindOrCreateByFullName(ctx, "Ivan", "Turgenev"); err != nil {
			return err
		}
		if _, err := tx.Genres().FindOrCreateByName(ctx, "Novel"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	authors, err := store.Authors().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
	genres, err := store.Genres().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
