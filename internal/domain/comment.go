package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a document from the comments collection. Each comment belongs
// to exactly one movie via MovieID.
type Comment struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MovieID primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

// CommenterRank is one row of the most-active-commenters ranking.
type CommenterRank struct {
	Email string `bson:"_id" json:"email"`
	Count int64  `bson:"count" json:"count"`
}
