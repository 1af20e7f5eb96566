package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaPostgres is the library schema used by the hand-written SQL store.
// Natural keys carry unique constraints so find-or-create can rely on ON CONFLICT.
const schemaPostgres = `
CREATE TABLE IF NOT EXISTS author (
  id         BIGSERIAL PRIMARY KEY,
  last_name  VARCHAR(255) NOT NULL,
  first_name VARCHAR(255) NOT NULL,
  age        INTEGER,
  CONSTRAINT ux_author_full_name UNIQUE (first_name, last_name)
);

CREATE TABLE IF NOT EXISTS genre (
  id   BIGSERIAL PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  CONSTRAINT ux_genre_name UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS book (
  id        BIGSERIAL PRIMARY KEY,
  title     VARCHAR(255) NOT NULL,
  author_id BIGINT NOT NULL CONSTRAINT fk_book_author REFERENCES author(id),
  genre_id  BIGINT NOT NULL CONSTRAINT fk_book_genre REFERENCES genre(id)
);

CREATE TABLE IF NOT EXISTS comment (
  id          BIGSERIAL PRIMARY KEY,
  description TEXT NOT NULL,
  nickname    VARCHAR(255) NOT NULL,
  book_id     BIGINT NOT NULL CONSTRAINT fk_comment_book REFERENCES book(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS ix_book_author ON book(author_id);
CREATE INDEX IF NOT EXISTS ix_book_genre ON book(genre_id);
CREATE INDEX IF NOT EXISTS ix_comment_book ON comment(book_id);
`

// Migrate creates the library tables if they do not exist yet
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaPostgres); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
