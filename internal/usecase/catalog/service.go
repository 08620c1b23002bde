// Package catalog implements the movie query and aggregation operations:
// paginated retrieval, faceted search, and the comment join.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/reeldex/reeldex/internal/domain"
)

// Service orchestrates catalog queries over the movie repository.
type Service struct {
	movies      MovieRepository
	defaultPage int
	maxPage     int
}

// New creates a catalog service.
func New(movies MovieRepository) *Service {
	return &Service{movies: movies, defaultPage: 20, maxPage: 100}
}

// WithPagination overrides the default and maximum page sizes.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	s.defaultPage = defaultSize
	s.maxPage = maxSize
	return s
}

// FetchMovies returns one page of movies for the given filter intent. The
// exact match count is computed only on page zero; later pages omit it and
// callers reuse the first response's value.
func (s *Service) FetchMovies(ctx context.Context, f domain.Filter, page, perPage int) (domain.MoviePage, error) {
	if page < 0 {
		page = 0
	}
	perPage = s.clampPerPage(perPage)

	q := Compile(f)
	skip := int64(page) * int64(perPage)

	movies, err := s.movies.Page(ctx, q, skip, int64(perPage))
	if err != nil {
		return domain.MoviePage{}, fmt.Errorf("page movies: %w", err)
	}

	result := domain.MoviePage{Movies: movies}
	if page == 0 {
		total, err := s.movies.Count(ctx, q.Predicate)
		if err != nil {
			return domain.MoviePage{}, fmt.Errorf("count movies: %w", err)
		}
		result.Total = &total
	}
	return result, nil
}

// FacetedSearch returns one page of the cast match together with runtime and
// rating histograms and the exact total. Calling it without a cast filter is
// a programming error: facets are only meaningful over a real restriction,
// so it panics rather than degrade to an empty result.
func (s *Service) FacetedSearch(ctx context.Context, cast []string, page, perPage int) (domain.FacetResult, error) {
	if len(cast) == 0 {
		panic("catalog: faceted search requires a cast filter")
	}
	if page < 0 {
		page = 0
	}
	perPage = s.clampPerPage(perPage)
	skip := int64(page) * int64(perPage)

	// The fan-out page and the exact count are independent aggregations
	// over the identical match; run them concurrently.
	var (
		facets domain.FacetPage
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		facets, err = s.movies.FacetedPage(gctx, cast, skip, int64(perPage))
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.movies.FacetedCount(gctx, cast)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.FacetResult{}, fmt.Errorf("faceted search: %w", err)
	}

	return domain.FacetResult{FacetPage: facets, Total: total}, nil
}

// GetMovie returns a movie with its comments embedded newest-first, or nil
// when the movie does not exist. A malformed identifier means the movie
// cannot exist and yields nil as well, never an error.
func (s *Service) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	m, err := s.movies.GetWithComments(ctx, oid)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie %s: %w", id, err)
	}
	return &m, nil
}

// MoviesByCountry lists the id and title of movies produced in any of the
// given countries.
func (s *Service) MoviesByCountry(ctx context.Context, countries []string) ([]domain.MovieSummary, error) {
	if len(countries) == 0 {
		return nil, nil
	}
	summaries, err := s.movies.ByCountry(ctx, countries)
	if err != nil {
		return nil, fmt.Errorf("movies by country: %w", err)
	}
	return summaries, nil
}

// AllGenres returns every distinct genre tag in the catalog.
func (s *Service) AllGenres(ctx context.Context) ([]string, error) {
	genres, err := s.movies.AllGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("all genres: %w", err)
	}
	return genres, nil
}

func (s *Service) clampPerPage(perPage int) int {
	if perPage <= 0 {
		return s.defaultPage
	}
	if perPage > s.maxPage {
		return s.maxPage
	}
	return perPage
}
