package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie is a catalog document from the movies collection. Only the fields
// the query layer touches are mapped; everything else stays in the store.
type Movie struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	Year       int                `bson:"year,omitempty" json:"year,omitempty"`
	Runtime    int                `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Metacritic int                `bson:"metacritic,omitempty" json:"metacritic,omitempty"`
	Plot       string             `bson:"plot,omitempty" json:"plot,omitempty"`
	Poster     string             `bson:"poster,omitempty" json:"poster,omitempty"`
	Cast       []string           `bson:"cast,omitempty" json:"cast,omitempty"`
	Countries  []string           `bson:"countries,omitempty" json:"countries,omitempty"`
	Genres     []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Tomatoes   *Tomatoes          `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`

	// Score carries the full-text relevance score when the query projected it.
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`

	// Comments is populated at read time by the comment join; it is never
	// stored on the movie document.
	Comments []Comment `bson:"comments,omitempty" json:"comments,omitempty"`
}

// Tomatoes holds Rotten Tomatoes review data.
type Tomatoes struct {
	Viewer      ViewerRating `bson:"viewer" json:"viewer"`
	LastUpdated time.Time    `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

// ViewerRating holds audience review numbers. NumReviews exists only on a
// curated subset of notable titles and doubles as the default sort key.
type ViewerRating struct {
	Rating     float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	NumReviews int     `bson:"numReviews,omitempty" json:"numReviews,omitempty"`
	Meter      int     `bson:"meter,omitempty" json:"meter,omitempty"`
}

// MovieSummary is the title-only projection used by country listings.
type MovieSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}
