package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/domains/library/model"
	"github.com/Dmitriy-Grakovich/2025-12-otus-spring-GDV/internal/shared/shell"
)

func (c *Commands) ListComments(ctx context.Context, args []string) (string, error) {
	if err := shell.Parse(shell.NewFlagSet("comments"), args); err != nil {
		return "", err
	}

	comments, err := c.comments.GetAll(ctx)
	if err != nil {
		return "", err
	}
	if len(comments) == 0 {
		return "No comments found.", nil
	}
	return commentList("Comments:\n", comments, true), nil
}

func (c *Commands) AddComment(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("add-comment")
	bookID := fs.Int64("book-id", 0, "book id")
	var req model.CommentRequest
	fs.StringVar(&req.Nickname, "nickname", "", "author of the comment")
	fs.StringVar(&req.Description, "description", "", "comment text")
	if err := parseFlags(fs, args, "nickname", "description"); err != nil {
		return "", err
	}
	if err := positive("book-id", *bookID); err != nil {
		return "", err
	}

	created, err := c.books.AddComment(ctx, *bookID, req)
	if err != nil {
		return "Error adding comment: " + err.Error(), nil
	}

	title := "Unknown"
	if stored, err := c.comments.GetByID(ctx, created.ID); err == nil && stored.BookTitle != "" {
		title = stored.BookTitle
	}
	return fmt.Sprintf("Comment added successfully:\nID: %d\nNickname: %s\nComment: %s\nBook: %s",
		created.ID, created.Nickname, created.Description, title), nil
}

func (c *Commands) UpdateComment(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("update-comment")
	id := fs.Int64("id", 0, "comment id")
	var req model.CommentRequest
	fs.StringVar(&req.Nickname, "nickname", "", "author of the comment")
	fs.StringVar(&req.Description, "description", "", "comment text")
	if err := parseFlags(fs, args, "nickname", "description"); err != nil {
		return "", err
	}
	if err := positive("id", *id); err != nil {
		return "", err
	}

	updated, err := c.comments.Update(ctx, *id, req)
	if err != nil {
		return "Error updating comment: " + err.Error(), nil
	}
	return fmt.Sprintf("Comment updated successfully:\nID: %d\nNickname: %s\nComment: %s",
		updated.ID, updated.Nickname, updated.Description), nil
}

func (c *Commands) RemoveComment(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("remove-comment")
	bookID := fs.Int64("book-id", 0, "book id")
	commentID := fs.Int64("comment-id", 0, "comment id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("book-id", *bookID); err != nil {
		return "", err
	}
	if err := positive("comment-id", *commentID); err != nil {
		return "", err
	}

	if err := c.books.RemoveComment(ctx, *bookID, *commentID); err != nil {
		return "Error removing comment: " + err.Error(), nil
	}
	return "Comment removed successfully", nil
}

func (c *Commands) BookComments(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("book-comments")
	bookID := fs.Int64("book-id", 0, "book id")
	if err := shell.Parse(fs, args); err != nil {
		return "", err
	}
	if err := positive("book-id", *bookID); err != nil {
		return "", err
	}

	comments, err := c.books.GetComments(ctx, *bookID)
	if err != nil {
		return "Error: " + err.Error(), nil
	}
	if len(comments) == 0 {
		return "No comments found for this book.", nil
	}
	return commentList(fmt.Sprintf("Comments for book ID %d:\n", *bookID), comments, false), nil
}

func (c *Commands) SearchComments(ctx context.Context, args []string) (string, error) {
	fs := shell.NewFlagSet("search-comments")
	nickname := fs.String("nickname", "", "exact nickname")
	if err := parseFlags(fs, args, "nickname"); err != nil {
		return "", err
	}

	comments, err := c.comments.FindByNickname(ctx, *nickname)
	if err != nil {
		return "", err
	}
	if len(comments) == 0 {
		return "No comments found for nickname: " + *nickname, nil
	}
	return commentList("Found comments:\n", comments, true), nil
}

func commentList(header string, comments []model.Comment, withBook bool) string {
	var sb strings.Builder
	sb.WriteString(header)
	for i, cm := range comments {
		fmt.Fprintf(&sb, "%d. ID: %d, Nickname: '%s', Comment: %s", i+1, cm.ID, cm.Nickname, cm.Description)
		if withBook {
			title := cm.BookTitle
			if title == "" {
				title = "No book"
			}
			fmt.Fprintf(&sb, ", Book: %s", title)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
