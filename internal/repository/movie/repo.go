// Package movie implements catalog queries against the movies collection.
package movie

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reeldex/reeldex/internal/domain"
)

// Repo implements usecase/catalog.MovieRepository over MongoDB.
type Repo struct {
	coll *mongo.Collection
}

// New creates a movie repository on the given collection handle.
func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// Page executes a compiled query with skip/limit paging.
func (r *Repo) Page(ctx context.Context, q domain.QuerySpec, skip, limit int64) ([]domain.Movie, error) {
	opts := options.Find().
		SetSort(q.Sort).
		SetSkip(skip).
		SetLimit(limit)
	if q.Projection != nil {
		opts.SetProjection(q.Projection)
	}

	cur, err := r.coll.Find(ctx, q.Predicate, opts)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	var movies []domain.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// Count returns the exact number of documents matching the predicate.
func (r *Repo) Count(ctx context.Context, predicate bson.D) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, predicate)
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

// FacetedPage runs the fan-out aggregation: one page of the cast match plus
// runtime and rating histograms over the paged input. Intermediate stages
// may spill to disk; a command failure means the match was too large to
// sort and is surfaced as ErrFilterTooBroad.
func (r *Repo) FacetedPage(ctx context.Context, cast []string, skip, limit int64) (domain.FacetPage, error) {
	cur, err := r.coll.Aggregate(ctx, facetedPagePipeline(cast, skip, limit),
		options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return domain.FacetPage{}, facetErr("aggregate faceted page", err)
	}

	var docs []facetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return domain.FacetPage{}, facetErr("decode faceted page", err)
	}
	if len(docs) == 0 {
		return domain.FacetPage{}, nil
	}
	return docs[0].toFacetPage(), nil
}

// FacetedCount counts the whole cast match behind a faceted page.
func (r *Repo) FacetedCount(ctx context.Context, cast []string) (int64, error) {
	cur, err := r.coll.Aggregate(ctx, facetedCountPipeline(cast),
		options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return 0, facetErr("aggregate faceted count", err)
	}

	var docs []countDoc
	if err := cur.All(ctx, &docs); err != nil {
		return 0, facetErr("decode faceted count", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}
	return docs[0].Count, nil
}

// GetWithComments returns one movie with its comments joined in, newest
// first. Returns domain.ErrNotFound when no movie matches.
func (r *Repo) GetWithComments(ctx context.Context, id primitive.ObjectID) (domain.Movie, error) {
	cur, err := r.coll.Aggregate(ctx, commentsJoinPipeline(id))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("aggregate movie %s: %w", id.Hex(), err)
	}

	var movies []domain.Movie
	if err := cur.All(ctx, &movies); err != nil {
		return domain.Movie{}, fmt.Errorf("decode movie %s: %w", id.Hex(), err)
	}
	if len(movies) == 0 {
		return domain.Movie{}, domain.ErrNotFound
	}
	return movies[0], nil
}

// ByCountry returns the id and title of every movie produced in any of the
// given countries.
func (r *Repo) ByCountry(ctx context.Context, countries []string) ([]domain.MovieSummary, error) {
	predicate := bson.D{{Key: "countries", Value: bson.D{{Key: "$in", Value: countries}}}}
	projection := bson.D{{Key: "title", Value: 1}}

	cur, err := r.coll.Find(ctx, predicate, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("find movies by country: %w", err)
	}

	var summaries []domain.MovieSummary
	if err := cur.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("decode movie summaries: %w", err)
	}
	return summaries, nil
}

// AllGenres returns the distinct genre tags across the catalog.
func (r *Repo) AllGenres(ctx context.Context) ([]string, error) {
	cur, err := r.coll.Aggregate(ctx, allGenresPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate genres: %w", err)
	}

	var docs []genresDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode genres: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0].Genres, nil
}

// facetErr re-signals server-side aggregation failures as ErrFilterTooBroad
// so callers can tell the user to narrow the filter; everything else stays a
// plain store failure.
func facetErr(op string, err error) error {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrFilterTooBroad, cmdErr.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
