package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/domain"
)

// mockMovieRepo implements MovieRepository for tests.
type mockMovieRepo struct {
	pageMovies []domain.Movie
	pageErr    error
	lastQuery  domain.QuerySpec
	lastSkip   int64
	lastLimit  int64

	countN      int64
	countErr    error
	countCalled bool
	lastCounted bson.D

	facetPage     domain.FacetPage
	facetPageErr  error
	facetCount    int64
	facetCountErr error
	lastFacetCast []string

	getMovie domain.Movie
	getErr   error
	lastID   primitive.ObjectID

	summaries  []domain.MovieSummary
	summaryErr error

	genres    []string
	genresErr error
}

func (m *mockMovieRepo) Page(_ context.Context, q domain.QuerySpec, skip, limit int64) ([]domain.Movie, error) {
	m.lastQuery = q
	m.lastSkip = skip
	m.lastLimit = limit
	return m.pageMovies, m.pageErr
}

func (m *mockMovieRepo) Count(_ context.Context, predicate bson.D) (int64, error) {
	m.countCalled = true
	m.lastCounted = predicate
	return m.countN, m.countErr
}

func (m *mockMovieRepo) FacetedPage(_ context.Context, cast []string, skip, limit int64) (domain.FacetPage, error) {
	m.lastFacetCast = cast
	m.lastSkip = skip
	m.lastLimit = limit
	return m.facetPage, m.facetPageErr
}

func (m *mockMovieRepo) FacetedCount(_ context.Context, cast []string) (int64, error) {
	m.lastFacetCast = cast
	return m.facetCount, m.facetCountErr
}

func (m *mockMovieRepo) GetWithComments(_ context.Context, id primitive.ObjectID) (domain.Movie, error) {
	m.lastID = id
	return m.getMovie, m.getErr
}

func (m *mockMovieRepo) ByCountry(_ context.Context, _ []string) ([]domain.MovieSummary, error) {
	return m.summaries, m.summaryErr
}

func (m *mockMovieRepo) AllGenres(_ context.Context) ([]string, error) {
	return m.genres, m.genresErr
}
