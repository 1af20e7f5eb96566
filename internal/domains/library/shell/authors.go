package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

func (c *Commands) ListAuthors(ctx context.Context, args []string) (string, error) {
	if err := shell.Parse(shell.NewFlagSet("authors"), args); err != nil {
		return "", err
	}

	authors, err := c.authors.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(authors) == 0 {
		return "No authors found.", nil
	}

	var sb strings.Builder
	sb.WriteString("Authors:\n")
	for i, a := range authors {
		fmt.Fprintf(&sb, "%d. ID: %d, Name: %s, Age: %s\n", i+1, a.ID, a.FullName(), a.AgeString())
	}
	return sb.String(), nil
}

// authorRequest parses the shared author flags; a non-positive --age means unknown
func authorRequest(name string, args []string, withID bool) (int64, model.AuthorRequest, error) {
	fs := shell.NewFlagSet(name)
	id := fs.Int64("id", 0, "author id")
	var req model.AuthorRequest
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	age := &shell.OptionalInt{}
	fs.Var(age, "age", "age in years")
	if err := parseFlags(fs, args, "first-name", "last-name"); err != nil {
		return 0, req, err
	}
	if withID {
		if err := positive("id", *id); err != nil {
			return 0, req, err
		}
	}
	if age.Value != nil && *age.Value > 0 {
		req.Age = age.Value
	}
	return *id, req, nil
}

func (c *Commands) CreateAuthor(ctx context.Context, args []string) (string, error) {
	_, req, err := authorRequest("create-author", args, false)
	if err != nil {
		return "", err
	}

	a, err := c.authors.Create(ctx, req)
	if err != nil {
		return "Error creating author: " + err.Error(), nil
	}
	return describeAuthor("Author created successfully", a), nil
}

func (c *Commands) UpdateAuthor(ctx context.Context, args []string) (string, error) {
	id, req, err := authorRequest("update-author", args, true)
	if err != nil {
		return "", err
	}

	a, err := c.authors.Update(ctx, id, req)
	if err != nil {
		return "Error updating author: " + err.Error(), nil
	}
	return describeAuthor("Author updated successfully", a), nil
}

func (c *Commands) DeleteAuthor(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("delete-author")
	id := fs.Int64("id", 0, "author id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	if err := c.authors.Delete(ctx, *id); err != nil {
		return "Error deleting author: " + err.Error(), nil
	}
	return fmt.Sprintf("Author deleted successfully with id: %d", *id), nil
}

func describeAuthor(header string, a *model.Author) string {
	return fmt.Sprintf("%s:\nID: %d\nName: %s\nAge: %s", header, a.ID, a.FullName(), a.AgeString())
}
