package db

import "go.mongodb.org/mongo-driver/bson"

// Pipeline is a fluent builder for aggregation pipelines. Stages are
// appended in call order; Clone forks a shared prefix so two pipelines (for
// example a page and its count) can diverge from the same match and sort.
type Pipeline struct {
	stages []bson.D
}

// NewPipeline starts an empty aggregation pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Match appends a $match stage.
func (p *Pipeline) Match(predicate bson.D) *Pipeline {
	return p.append("$match", predicate)
}

// Sort appends a $sort stage.
func (p *Pipeline) Sort(order bson.D) *Pipeline {
	return p.append("$sort", order)
}

// Skip appends a $skip stage.
func (p *Pipeline) Skip(n int64) *Pipeline {
	return p.append("$skip", n)
}

// Limit appends a $limit stage.
func (p *Pipeline) Limit(n int64) *Pipeline {
	return p.append("$limit", n)
}

// Count appends a $count stage writing the total into the named field.
func (p *Pipeline) Count(field string) *Pipeline {
	return p.append("$count", field)
}

// Unwind appends an $unwind stage over the given field path.
func (p *Pipeline) Unwind(path string) *Pipeline {
	return p.append("$unwind", path)
}

// Group appends a $group stage.
func (p *Pipeline) Group(spec bson.D) *Pipeline {
	return p.append("$group", spec)
}

// AddFields appends an $addFields stage.
func (p *Pipeline) AddFields(fields bson.D) *Pipeline {
	return p.append("$addFields", fields)
}

// Facet appends a $facet fan-out stage. Each branch runs its own
// sub-pipeline over the shared input and the results come back side by side.
func (p *Pipeline) Facet(branches bson.D) *Pipeline {
	return p.append("$facet", branches)
}

// Bucket appends a $bucket stage grouping the field into the half-open
// ranges between boundaries, with out-of-range and missing values collected
// under the default label. Each bucket counts its documents.
func (p *Pipeline) Bucket(groupBy string, boundaries []int32, defaultLabel string) *Pipeline {
	bounds := make(bson.A, len(boundaries))
	for i, b := range boundaries {
		bounds[i] = b
	}
	return p.append("$bucket", bson.D{
		{Key: "groupBy", Value: "$" + groupBy},
		{Key: "boundaries", Value: bounds},
		{Key: "default", Value: defaultLabel},
		{Key: "output", Value: bson.D{
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}},
	})
}

// LookupPipeline appends an expressive $lookup stage: a correlated subquery
// against another collection with its own variables and pipeline.
func (p *Pipeline) LookupPipeline(from string, let bson.D, sub []bson.D, as string) *Pipeline {
	return p.append("$lookup", bson.D{
		{Key: "from", Value: from},
		{Key: "let", Value: let},
		{Key: "pipeline", Value: sub},
		{Key: "as", Value: as},
	})
}

// Clone returns an independent copy of the pipeline built so far.
func (p *Pipeline) Clone() *Pipeline {
	stages := make([]bson.D, len(p.stages))
	copy(stages, p.stages)
	return &Pipeline{stages: stages}
}

// Build returns the assembled stages.
func (p *Pipeline) Build() []bson.D {
	return p.stages
}

func (p *Pipeline) append(op string, value any) *Pipeline {
	p.stages = append(p.stages, bson.D{{Key: op, Value: value}})
	return p
}
