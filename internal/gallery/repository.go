package gallery

import (
	"context"
	"errors"
	"fmt"

	"CSEPortal/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("photo not found")

type GalleryRepository struct {
	collection *mongo.Collection
}

func NewGalleryRepository(store *config.Store) *GalleryRepository {
	return &GalleryRepository{collection: store.Gallery}
}

func (r *GalleryRepository) FindAll(ctx context.Context) ([]Photo, error) {
	return r.find(ctx, bson.M{})
}

func (r *GalleryRepository) FindByCategory(ctx context.Context, category string) ([]Photo, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *GalleryRepository) find(ctx context.Context, filter bson.M) ([]Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find photos: %w", err)
	}
	photos := []Photo{}
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return photos, nil
}

func (r *GalleryRepository) Create(ctx context.Context, p *Photo) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert photo: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert photo: unexpected id type %T", res.InsertedID)
	}
	return oid, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid photo id %q: %w", id, err)
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
