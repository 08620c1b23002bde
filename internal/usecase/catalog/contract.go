package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/domain"
)

// MovieRepository defines the storage contract for catalog queries.
type MovieRepository interface {
	Page(ctx context.Context, q domain.QuerySpec, skip, limit int64) ([]domain.Movie, error)
	Count(ctx context.Context, predicate bson.D) (int64, error)

	FacetedPage(ctx context.Context, cast []string, skip, limit int64) (domain.FacetPage, error)
	FacetedCount(ctx context.Context, cast []string) (int64, error)

	GetWithComments(ctx context.Context, id primitive.ObjectID) (domain.Movie, error)

	ByCountry(ctx context.Context, countries []string) ([]domain.MovieSummary, error)
	AllGenres(ctx context.Context) ([]string, error)
}
