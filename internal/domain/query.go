package domain

import "go.mongodb.org/mongo-driver/bson"

// QuerySpec is the compiled form of a filter intent: what to match, how to
// order, and which synthetic fields to surface. Projection is nil unless the
// sort depends on a computed field (the text relevance score).
type QuerySpec struct {
	Predicate  bson.D
	Sort       bson.D
	Projection bson.D
}
