package catalog

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/reeldex/reeldex/internal/domain"
)

// reviewCountField only exists on a curated subset of notable titles.
// Sorting on it descending surfaces that subset first and pushes
// undecorated documents to the end without excluding them.
const reviewCountField = "tomatoes.viewer.numReviews"

// scoreField carries the synthetic full-text relevance score.
const scoreField = "score"

// Compile maps a filter intent onto a predicate, sort order, and optional
// projection. It is total: an empty or unrecognized intent compiles to the
// match-everything predicate under the default sort.
func Compile(f domain.Filter) domain.QuerySpec {
	spec := domain.QuerySpec{
		Predicate: bson.D{},
		Sort:      bson.D{{Key: reviewCountField, Value: -1}},
	}

	switch f.Kind() {
	case domain.FilterText:
		meta := bson.D{{Key: "$meta", Value: "textScore"}}
		spec.Predicate = bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: f.Text()}}}}
		// The score must be projected before the sort can consume it.
		spec.Projection = bson.D{{Key: scoreField, Value: meta}}
		spec.Sort = bson.D{{Key: scoreField, Value: meta}}
	case domain.FilterCast:
		spec.Predicate = bson.D{{Key: "cast", Value: bson.D{{Key: "$in", Value: f.Names()}}}}
	case domain.FilterGenres:
		spec.Predicate = bson.D{{Key: "genres", Value: bson.D{{Key: "$in", Value: f.Names()}}}}
	}

	return spec
}
