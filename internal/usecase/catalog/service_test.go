package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/domain"
)

func TestFetchMovies_PageZeroCarriesTotal(t *testing.T) {
	repo := &mockMovieRepo{
		pageMovies: []domain.Movie{{Title: "a"}, {Title: "b"}},
		countN:     42,
	}
	svc := New(repo)

	page, err := svc.FetchMovies(context.Background(), domain.GenreFilter("Drama"), 0, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.countCalled {
		t.Error("expected an exact count on page zero")
	}
	if page.Total == nil || *page.Total != 42 {
		t.Fatalf("expected total 42, got %v", page.Total)
	}
	if len(page.Movies) != 2 {
		t.Errorf("expected 2 movies, got %d", len(page.Movies))
	}
}

func TestFetchMovies_LaterPagesOmitTotal(t *testing.T) {
	repo := &mockMovieRepo{pageMovies: []domain.Movie{{Title: "c"}}}
	svc := New(repo)

	page, err := svc.FetchMovies(context.Background(), domain.NoFilter(), 3, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.countCalled {
		t.Error("count must not run past page zero")
	}
	if page.Total != nil {
		t.Errorf("expected no total, got %d", *page.Total)
	}
	if repo.lastSkip != 60 {
		t.Errorf("expected skip 60, got %d", repo.lastSkip)
	}
	if repo.lastLimit != 20 {
		t.Errorf("expected limit 20, got %d", repo.lastLimit)
	}
}

func TestFetchMovies_CountsUnskippedPredicate(t *testing.T) {
	repo := &mockMovieRepo{countN: 7}
	svc := New(repo)

	if _, err := svc.FetchMovies(context.Background(), domain.CastFilter("Tom Hanks"), 0, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Compile(domain.CastFilter("Tom Hanks")).Predicate
	if len(repo.lastCounted) != len(want) || repo.lastCounted[0].Key != want[0].Key {
		t.Errorf("count must use the compiled predicate, got %v", repo.lastCounted)
	}
}

func TestFetchMovies_ClampsPageSize(t *testing.T) {
	repo := &mockMovieRepo{countN: 1}
	svc := New(repo).WithPagination(20, 100)

	if _, err := svc.FetchMovies(context.Background(), domain.NoFilter(), 0, 5000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != 100 {
		t.Errorf("expected limit clamped to 100, got %d", repo.lastLimit)
	}

	if _, err := svc.FetchMovies(context.Background(), domain.NoFilter(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastLimit != 20 {
		t.Errorf("expected default limit 20, got %d", repo.lastLimit)
	}
}

func TestFetchMovies_PageError(t *testing.T) {
	repo := &mockMovieRepo{pageErr: errors.New("socket closed")}
	svc := New(repo)

	if _, err := svc.FetchMovies(context.Background(), domain.NoFilter(), 0, 20); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestFacetedSearch_AssemblesPageAndCount(t *testing.T) {
	repo := &mockMovieRepo{
		facetPage: domain.FacetPage{
			Movies:  []domain.Movie{{Title: "a"}},
			Runtime: []domain.FacetBucket{{Label: "60-90", Count: 120}, {Label: "other", Count: 117}},
			Rating:  []domain.FacetBucket{{Label: "70-90", Count: 237}},
		},
		facetCount: 237,
	}
	svc := New(repo)

	result, err := svc.FacetedSearch(context.Background(), []string{"Tom Hanks"}, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 237 {
		t.Errorf("expected total 237, got %d", result.Total)
	}
	if len(result.Movies) != 1 || len(result.Runtime) != 2 || len(result.Rating) != 1 {
		t.Errorf("fan-out branches lost in assembly: %+v", result)
	}
	if repo.lastSkip != 20 {
		t.Errorf("expected skip 20, got %d", repo.lastSkip)
	}

	// Bucket counts cover the whole match, not the page.
	var sum int64
	for _, b := range result.Runtime {
		sum += b.Count
	}
	if sum != result.Total {
		t.Errorf("runtime buckets sum to %d, want total %d", sum, result.Total)
	}
}

func TestFacetedSearch_EmptyCastPanics(t *testing.T) {
	svc := New(&mockMovieRepo{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a missing cast filter")
		}
	}()
	_, _ = svc.FacetedSearch(context.Background(), nil, 0, 20)
}

func TestFacetedSearch_TooBroadSurfaces(t *testing.T) {
	repo := &mockMovieRepo{facetPageErr: domain.ErrFilterTooBroad}
	svc := New(repo)

	_, err := svc.FacetedSearch(context.Background(), []string{"Tom Hanks"}, 0, 20)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrFilterTooBroad) {
		t.Errorf("expected ErrFilterTooBroad, got %v", err)
	}
}

func TestFacetedSearch_CountError(t *testing.T) {
	repo := &mockMovieRepo{facetCountErr: errors.New("cursor timeout")}
	svc := New(repo)

	if _, err := svc.FacetedSearch(context.Background(), []string{"Tom Hanks"}, 0, 20); err == nil {
		t.Fatal("expected count failure to propagate")
	}
}

func TestGetMovie_EmbedsComments(t *testing.T) {
	id := primitive.NewObjectID()
	newest := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockMovieRepo{
		getMovie: domain.Movie{
			ID:    id,
			Title: "joined",
			Comments: []domain.Comment{
				{Date: newest},
				{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
				{Date: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}
	svc := New(repo)

	movie, err := svc.GetMovie(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie == nil {
		t.Fatal("expected a movie")
	}
	if repo.lastID != id {
		t.Errorf("expected lookup by %s, got %s", id.Hex(), repo.lastID.Hex())
	}
	if len(movie.Comments) != 3 || !movie.Comments[0].Date.Equal(newest) {
		t.Errorf("expected comments newest-first, got %+v", movie.Comments)
	}
}

func TestGetMovie_MalformedIDIsAbsent(t *testing.T) {
	svc := New(&mockMovieRepo{getErr: errors.New("must not be reached")})

	movie, err := svc.GetMovie(context.Background(), "not-a-valid-id")
	if err != nil {
		t.Fatalf("a malformed id must not raise, got %v", err)
	}
	if movie != nil {
		t.Fatalf("expected absent movie, got %+v", movie)
	}
}

func TestGetMovie_MissingIsAbsent(t *testing.T) {
	svc := New(&mockMovieRepo{getErr: domain.ErrNotFound})

	movie, err := svc.GetMovie(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if movie != nil {
		t.Fatalf("expected absent movie, got %+v", movie)
	}
}

func TestGetMovie_StoreFailureIsAnError(t *testing.T) {
	svc := New(&mockMovieRepo{getErr: errors.New("connection reset")})

	_, err := svc.GetMovie(context.Background(), primitive.NewObjectID().Hex())
	if err == nil {
		t.Fatal("store failures must surface, not collapse into an empty movie")
	}
}

func TestMoviesByCountry_EmptyInput(t *testing.T) {
	svc := New(&mockMovieRepo{summaryErr: errors.New("must not be reached")})

	summaries, err := svc.MoviesByCountry(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summaries != nil {
		t.Errorf("expected no lookup for empty input, got %v", summaries)
	}
}

func TestAllGenres(t *testing.T) {
	svc := New(&mockMovieRepo{genres: []string{"Drama", "Comedy"}})

	genres, err := svc.AllGenres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 2 {
		t.Errorf("expected 2 genres, got %v", genres)
	}
}
