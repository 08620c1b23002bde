package movie

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/reeldex/reeldex/internal/db"
)

// Facet bucket boundaries. Values outside the ranges, and documents missing
// the field entirely, land in the "other" bucket.
var (
	runtimeBoundaries = []int32{0, 60, 90, 120, 180}
	ratingBoundaries  = []int32{0, 50, 70, 90, 100}
)

const otherBucket = "other"

// reviewCountSort is the shared display sort: descending on the review-count
// field so curated titles surface first. Facets reuse it for consistency
// with the primary listing.
var reviewCountSort = bson.D{{Key: "tomatoes.viewer.numReviews", Value: -1}}

// castPredicate matches movies featuring any of the given cast members.
func castPredicate(cast []string) bson.D {
	return bson.D{{Key: "cast", Value: bson.D{{Key: "$in", Value: cast}}}}
}

// facetedBase is the shared prefix of both faceted pipelines: the cast match
// and the display sort. The page and count pipelines fork from a clone.
func facetedBase(cast []string) *db.Pipeline {
	return db.NewPipeline().
		Match(castPredicate(cast)).
		Sort(reviewCountSort)
}

// facetedPagePipeline pages the sorted match and fans out into three
// branches over the paged input: the runtime histogram, the rating
// histogram, and the movie page itself. The movies branch is a no-op field
// restatement kept so all three branches have a uniform pipeline shape.
func facetedPagePipeline(cast []string, skip, limit int64) []bson.D {
	return facetedBase(cast).
		Skip(skip).
		Limit(limit).
		Facet(bson.D{
			{Key: "runtime", Value: db.NewPipeline().
				Bucket("runtime", runtimeBoundaries, otherBucket).
				Build()},
			{Key: "rating", Value: db.NewPipeline().
				Bucket("metacritic", ratingBoundaries, otherBucket).
				Build()},
			{Key: "movies", Value: db.NewPipeline().
				AddFields(bson.D{{Key: "title", Value: "$title"}}).
				Build()},
		}).
		Build()
}

// facetedCountPipeline counts the full match behind the faceted page. The
// count runs as its own aggregation because a fan-out branch cannot page
// and count the unskipped match at the same time.
func facetedCountPipeline(cast []string) []bson.D {
	return facetedBase(cast).
		Count("count").
		Build()
}

// commentsJoinPipeline matches one movie and joins its comments through a
// correlated subquery: the join condition is an explicit equality expression
// on the comment's foreign key, evaluated per outer document. Comments come
// back newest first under the "comments" field.
func commentsJoinPipeline(id primitive.ObjectID) []bson.D {
	joined := db.NewPipeline().
		Match(bson.D{{Key: "$expr", Value: bson.D{
			{Key: "$eq", Value: bson.A{"$movie_id", "$$id"}},
		}}}).
		Sort(bson.D{{Key: "date", Value: -1}}).
		Build()

	return db.NewPipeline().
		Match(bson.D{{Key: "_id", Value: id}}).
		LookupPipeline(db.CollComments,
			bson.D{{Key: "id", Value: "$_id"}},
			joined,
			"comments").
		Build()
}

// allGenresPipeline collects the distinct genre tags across the catalog.
func allGenresPipeline() []bson.D {
	return db.NewPipeline().
		Unwind("$genres").
		Group(bson.D{
			{Key: "_id", Value: nil},
			{Key: "genres", Value: bson.D{{Key: "$addToSet", Value: "$genres"}}},
		}).
		Build()
}
