// Command migrate rewrites string-typed lastupdated fields on movie
// documents into BSON dates with a single bulk write.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/reeldex/reeldex/internal/db"
)

// Layouts seen in the catalog's lastupdated strings.
var lastUpdatedLayouts = []string{
	"2006-01-02 15:04:05.000000000",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func main() {
	var (
		uri    = flag.String("uri", os.Getenv("MONGODB_URI"), "MongoDB connection URI")
		dbName = flag.String("db", "sample_mflix", "database name")
	)
	flag.Parse()

	if *uri == "" {
		fmt.Fprintln(os.Stderr, "migrate: -uri or MONGODB_URI is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, *uri, *dbName); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, uri, dbName string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	movies := client.Database(dbName).Collection(db.CollMovies)

	// Only documents where lastupdated exists and is still a string.
	predicate := bson.D{{Key: "lastupdated", Value: bson.D{
		{Key: "$exists", Value: true},
		{Key: "$type", Value: "string"},
	}}}
	projection := bson.D{{Key: "lastupdated", Value: 1}}

	cur, err := movies.Find(ctx, predicate, options.Find().SetProjection(projection))
	if err != nil {
		return fmt.Errorf("find candidates: %w", err)
	}

	var docs []struct {
		ID          primitive.ObjectID `bson:"_id"`
		LastUpdated string             `bson:"lastupdated"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return fmt.Errorf("decode candidates: %w", err)
	}
	fmt.Printf("%d documents to migrate\n", len(docs))
	if len(docs) == 0 {
		return nil
	}

	updates := make([]mongo.WriteModel, 0, len(docs))
	for _, d := range docs {
		ts, err := parseLastUpdated(d.LastUpdated)
		if err != nil {
			fmt.Printf("skipping %s: %v\n", d.ID.Hex(), err)
			continue
		}
		updates = append(updates, mongo.NewUpdateOneModel().
			SetFilter(bson.D{{Key: "_id", Value: d.ID}}).
			SetUpdate(bson.D{{Key: "$set", Value: bson.D{{Key: "lastupdated", Value: ts}}}}))
	}
	if len(updates) == 0 {
		fmt.Println("no updates necessary")
		return nil
	}

	res, err := movies.BulkWrite(ctx, updates)
	if err != nil {
		return fmt.Errorf("bulk write: %w", err)
	}
	fmt.Printf("%d documents updated\n", res.ModifiedCount)
	return nil
}

func parseLastUpdated(value string) (time.Time, error) {
	for _, layout := range lastUpdatedLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable lastupdated %q", value)
}
