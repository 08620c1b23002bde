package movie

import (
	"fmt"

	"github.com/reeldex/reeldex/internal/domain"
)

// facetDoc is the single result document of the fan-out pipeline.
type facetDoc struct {
	Runtime []bucketDoc    `bson:"runtime"`
	Rating  []bucketDoc    `bson:"rating"`
	Movies  []domain.Movie `bson:"movies"`
}

// bucketDoc is one $bucket group: _id is the lower boundary of the range,
// or the default label for out-of-range and missing values.
type bucketDoc struct {
	ID    any   `bson:"_id"`
	Count int64 `bson:"count"`
}

// countDoc is the single result document of a $count pipeline.
type countDoc struct {
	Count int64 `bson:"count"`
}

// genresDoc is the single result document of the all-genres pipeline.
type genresDoc struct {
	Genres []string `bson:"genres"`
}

// toFacetPage converts the raw fan-out document into the domain shape,
// rendering range labels from the known boundary lists.
func (d *facetDoc) toFacetPage() domain.FacetPage {
	return domain.FacetPage{
		Movies:  d.Movies,
		Runtime: toBuckets(d.Runtime, runtimeBoundaries),
		Rating:  toBuckets(d.Rating, ratingBoundaries),
	}
}

func toBuckets(docs []bucketDoc, boundaries []int32) []domain.FacetBucket {
	buckets := make([]domain.FacetBucket, 0, len(docs))
	for _, d := range docs {
		buckets = append(buckets, domain.FacetBucket{
			Label: bucketLabel(d.ID, boundaries),
			Count: d.Count,
		})
	}
	return buckets
}

// bucketLabel renders a "lo-hi" range for a lower-boundary _id, or passes
// the default label through unchanged.
func bucketLabel(id any, boundaries []int32) string {
	lower, ok := asInt32(id)
	if !ok {
		return otherBucket
	}
	for i, b := range boundaries[:len(boundaries)-1] {
		if b == lower {
			return fmt.Sprintf("%d-%d", b, boundaries[i+1])
		}
	}
	return fmt.Sprintf("%d", lower)
}

// asInt32 normalizes the numeric types the driver may decode a bucket _id
// into. A string _id is the default bucket, not a number.
func asInt32(id any) (int32, bool) {
	switch v := id.(type) {
	case int32:
		return v, true
	case int64:
		return int32(v), true
	case float64:
		return int32(v), true
	default:
		return 0, false
	}
}
