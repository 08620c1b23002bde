// Package comments implements the commenter ranking and the comment writes.
package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/domain"
)

// topCommenterLimit caps the ranking for the admin display.
const topCommenterLimit = 20

// Service orchestrates comment operations over the comment repository.
type Service struct {
	repo Repository
}

// New creates a comments service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// TopCommenters returns the most frequent comment authors, descending by
// comment count, truncated to the top 20.
func (s *Service) TopCommenters(ctx context.Context) ([]domain.CommenterRank, error) {
	ranks, err := s.repo.TopCommenters(ctx, topCommenterLimit)
	if err != nil {
		return nil, fmt.Errorf("top commenters: %w", err)
	}
	return ranks, nil
}

// AddComment attaches a new comment to a movie. A malformed movie id means
// the movie does not exist.
func (s *Service) AddComment(ctx context.Context, movieID, name, email, text string, date time.Time) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}

	c := &domain.Comment{
		MovieID: oid,
		Name:    name,
		Email:   email,
		Text:    text,
		Date:    date,
	}
	id, err := s.repo.Add(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	c.ID = id
	return c, nil
}

// UpdateComment rewrites a comment's text, matched only when the email owns
// the comment.
func (s *Service) UpdateComment(ctx context.Context, id, email, text string, date time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	if err := s.repo.Update(ctx, oid, email, text, date); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// DeleteComment removes a comment, matched only when the email owns it.
func (s *Service) DeleteComment(ctx context.Context, id, email string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	if err := s.repo.Delete(ctx, oid, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
