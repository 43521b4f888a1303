package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Collection names in the portal database.
const (
	NoticesCollection           = "notices"
	ClassroomBookingsCollection = "classroomBookings"
	LabBookingsCollection       = "labBookings"
	GalleryCollection           = "gallery"
)

const connectTimeout = 10 * time.Second

type MongoDBClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Store is the set of collection handles the route handlers work against.
// It is built once at startup and passed to every repository.
type Store struct {
	Notices           *mongo.Collection
	ClassroomBookings *mongo.Collection
	LabBookings       *mongo.Collection
	Gallery           *mongo.Collection

	client *mongo.Client
}

// NewMongoDBClient connects and runs a ping against the admin database. Any
// failure is returned so fx aborts startup.
func NewMongoDBClient(lc fx.Lifecycle, cfg *Config, logger *zap.Logger) (*MongoDBClient, error) {
	uri, err := cfg.Mongo.ConnectionURI()
	if err != nil {
		return nil, err
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("uri", cfg.Mongo.Redacted()),
		zap.String("database", cfg.Mongo.Database))

	lc.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			logger.Info("closing MongoDB connection")
			return client.Disconnect(stopCtx)
		},
	})

	return &MongoDBClient{Client: client, Database: client.Database(cfg.Mongo.Database)}, nil
}

// Ping issues the admin ping command used as the liveness probe.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// NewStore exposes the named collections of the connected database.
func NewStore(c *MongoDBClient) *Store {
	return NewStoreFromDatabase(c.Database)
}

// NewStoreFromDatabase builds a Store over any database handle.
func NewStoreFromDatabase(db *mongo.Database) *Store {
	return &Store{
		Notices:           db.Collection(NoticesCollection),
		ClassroomBookings: db.Collection(ClassroomBookingsCollection),
		LabBookings:       db.Collection(LabBookingsCollection),
		Gallery:           db.Collection(GalleryCollection),
		client:            db.Client(),
	}
}

// Ping checks that the store is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return Ping(ctx, s.client)
}
