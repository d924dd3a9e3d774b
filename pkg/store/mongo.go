// Package store persists timetables in MongoDB, one database per faculty
// and one collection per group.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/viktor-yakubiv/lp/pkg/timetable"
)

const opTimeout = 10 * time.Second

// Mongo writes timetables to a MongoDB deployment.
type Mongo struct {
	client *mongo.Client
}

// Open connects to uri and checks the primary is reachable.
func Open(ctx context.Context, uri string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Mongo{client: client}, nil
}

// WriteResult replaces the stored timetable of the result's group.
func (m *Mongo) WriteResult(ctx context.Context, r *timetable.Result) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	collection := m.client.Database(DatabaseName(r.Faculty)).Collection(CollectionName(r.Group))
	filter := bson.M{"faculty": r.Faculty, "group": r.Group}

	if _, err := collection.ReplaceOne(ctx, filter, r, options.Replace().SetUpsert(true)); err != nil {
		return fmt.Errorf("store timetable of %s/%s: %w", r.Faculty, r.Group, err)
	}
	return nil
}

// WriteBatch stores every result of a batch.
func (m *Mongo) WriteBatch(ctx context.Context, results []*timetable.Result) error {
	for _, r := range results {
		if err := m.WriteResult(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the stored timetable of a group.
func (m *Mongo) Load(ctx context.Context, faculty, group string) (*timetable.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var r timetable.Result
	err := m.client.Database(DatabaseName(faculty)).Collection(CollectionName(group)).
		FindOne(ctx, bson.M{"faculty": faculty, "group": group}).Decode(&r)
	if err != nil {
		return nil, fmt.Errorf("load timetable of %s/%s: %w", faculty, group, err)
	}
	return &r, nil
}

// Close disconnects from the deployment.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return m.client.Disconnect(ctx)
}

// DatabaseName maps a faculty code to a valid database name.
func DatabaseName(faculty string) string {
	return strings.NewReplacer("/", "_", `\`, "_", ".", "_", " ", "_", `"`, "_", "$", "_", "*", "_",
		"<", "_", ">", "_", ":", "_", "|", "_", "?", "_").Replace(faculty)
}

// CollectionName maps a group code to a valid collection name.
func CollectionName(group string) string {
	return strings.NewReplacer("$", "_", "\x00", "_").Replace(group)
}
