package notice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CSEPortal/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no notice matches the given id.
var ErrNotFound = errors.New("notice not found")

var newestFirst = bson.D{{Key: "date", Value: -1}}

// NoticeRepository handles DB operations for notices.
type NoticeRepository struct {
	collection *mongo.Collection
}

func NewNoticeRepository(store *config.Store) *NoticeRepository {
	return &NoticeRepository{collection: store.Notices}
}

// FindAll returns every notice, newest first.
func (r *NoticeRepository) FindAll(ctx context.Context) ([]Notice, error) {
	return r.find(ctx, options.Find().SetSort(newestFirst))
}

// FindLatest returns at most limit notices, newest first.
func (r *NoticeRepository) FindLatest(ctx context.Context, limit int64) ([]Notice, error) {
	return r.find(ctx, options.Find().SetSort(newestFirst).SetLimit(limit))
}

func (r *NoticeRepository) find(ctx context.Context, opts *options.FindOptions) ([]Notice, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notices: %w", err)
	}
	notices := []Notice{}
	if err := cursor.All(ctx, &notices); err != nil {
		return nil, fmt.Errorf("decode notices: %w", err)
	}
	return notices, nil
}

func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*Notice, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid notice id %q: %w", id, err)
	}
	var n Notice
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find notice: %w", err)
	}
	return &n, nil
}

// Create inserts n and returns the id assigned by the store.
func (r *NoticeRepository) Create(ctx context.Context, n *Notice) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert notice: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert notice: unexpected id type %T", res.InsertedID)
	}
	return oid, nil
}

// Update overwrites every client-writable field of the notice and stamps
// updatedAt. The id and the creation date are left alone.
func (r *NoticeRepository) Update(ctx context.Context, id string, req NoticeRequest, updatedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid notice id %q: %w", id, err)
	}
	res, err := r.collection.UpdateByID(ctx, oid, updateDocument(req, updatedAt))
	if err != nil {
		return fmt.Errorf("update notice: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NoticeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid notice id %q: %w", id, err)
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete notice: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// updateDocument is the allow-list of fields a PUT may write.
func updateDocument(req NoticeRequest, updatedAt time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"title":       req.Title,
		"body":        req.Body,
		"description": req.Description,
		"category":    req.Category,
		"author":      req.Author,
		"link":        req.Link,
		"updatedAt":   updatedAt,
	}}
}
