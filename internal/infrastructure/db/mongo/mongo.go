package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridianbank/admin-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique indexes both repositories rely on. All
// uniqueness checks happen at insert/update time through these indexes, so
// concurrent writers cannot race past an application-level existence check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	adminIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
	}
	if _, err := db.Collection(adminCollection).Indexes().CreateMany(ctx, adminIndexes); err != nil {
		return fmt.Errorf("create admin indexes: %w", err)
	}

	customerIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		{Keys: bson.D{{Key: "account_number", Value: 1}}, Options: options.Index().SetUnique(true).SetName("account_number_unique")},
	}
	if _, err := db.Collection(customerCollection).Indexes().CreateMany(ctx, customerIndexes); err != nil {
		return fmt.Errorf("create customer indexes: %w", err)
	}
	return nil
}

// mapDuplicateKey converts a Mongo duplicate-key error into the domain error
// naming the colliding field, resolved from the violated index name.
func mapDuplicateKey(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	msg := err.Error()
	for _, field := range []string{"username", "account_number", "email"} {
		if strings.Contains(msg, "index: "+field+"_unique") {
			return &domain.DuplicateKeyError{Field: field}
		}
	}
	return &domain.DuplicateKeyError{Field: "unknown"}
}
