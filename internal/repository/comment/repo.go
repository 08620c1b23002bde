// Package comment implements queries and writes against the comments
// collection.
package comment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reeldex/reeldex/internal/db"
	"github.com/reeldex/reeldex/internal/domain"
)

// Repo implements usecase/comments.Repository. Writes go through the
// default collection handle; the ranking reads through a majority
// read-concern handle.
type Repo struct {
	coll   *mongo.Collection
	ranked *mongo.Collection
}

// New creates a comment repository. ranked must carry at least the
// collection's default read concern.
func New(coll, ranked *mongo.Collection) *Repo {
	return &Repo{coll: coll, ranked: ranked}
}

// TopCommenters groups all comments by author email and returns the most
// frequent authors, descending by count.
func (r *Repo) TopCommenters(ctx context.Context, limit int64) ([]domain.CommenterRank, error) {
	pipeline := db.NewPipeline().
		Group(bson.D{
			{Key: "_id", Value: "$email"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}).
		Sort(bson.D{{Key: "count", Value: -1}}).
		Limit(limit).
		Build()

	cur, err := r.ranked.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate top commenters: %w", err)
	}

	var ranks []domain.CommenterRank
	if err := cur.All(ctx, &ranks); err != nil {
		return nil, fmt.Errorf("decode top commenters: %w", err)
	}
	return ranks, nil
}

// Add inserts a comment and returns its generated id.
func (r *Repo) Add(ctx context.Context, c *domain.Comment) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert comment: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert comment: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

// Update rewrites the text and date of a comment, matched only when the
// given email owns it. Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Update(ctx context.Context, id primitive.ObjectID, email, text string, date time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "text", Value: text},
			{Key: "date", Value: date},
		}}},
	)
	if err != nil {
		return fmt.Errorf("update comment %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a comment, matched only when the given email owns it.
// Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID, email string) error {
	res, err := r.coll.DeleteOne(ctx,
		bson.D{{Key: "_id", Value: id}, {Key: "email", Value: email}},
	)
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
