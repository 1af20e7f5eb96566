package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

func (c *Commands) ListGenres(ctx context.Context, args []string) (string, error) {
	if err := shell.Parse(shell.NewFlagSet("genres"), args); err != nil {
		return "", err
	}

	genres, err := c.genres.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(genres) == 0 {
		return "No genres found.", nil
	}

	var sb strings.Builder
	sb.WriteString("Genres:\n")
	for i, g := range genres {
		fmt.Fprintf(&sb, "%d. ID: %d, Name: %s\n", i+1, g.ID, g.Name)
	}
	return sb.String(), nil
}

func (c *Commands) CreateGenre(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("create-genre")
	var req model.GenreRequest
	fs.StringVar(&req.Name, "name", "", "genre name")
	if err := parseFlags(fs, args, "name"); err != nil {
		return "", err
	}

	g, err := c.genres.Create(ctx, req)
	if err != nil {
		return "Error creating genre: " + err.Error(), nil
	}
	return fmt.Sprintf("Genre created successfully:\nID: %d\nName: %s", g.ID, g.Name), nil
}

func (c *Commands) UpdateGenre(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("update-genre")
	id := fs.Int64("id", 0, "genre id")
	var req model.GenreRequest
	fs.StringVar(&req.Name, "name", "", "genre name")
	if err := parseFlags(fs, args, "name"); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	g, err := c.genres.Update(ctx, *id, req)
	if err != nil {
		return "Error updating genre: " + err.Error(), nil
	}
	return fmt.Sprintf("Genre updated successfully:\nID: %d\nName: %s", g.ID, g.Name), nil
}

func (c *Commands) DeleteGenre(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("delete-genre")
	id := fs.Int64("id", 0, "genre id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	if err := c.genres.Delete(ctx, *id); err != nil {
		return "Error deleting genre: " + err.Error(), nil
	}
	return fmt.Sprintf("Genre deleted successfully with id: %d", *id), nil
}
