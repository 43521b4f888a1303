package booking

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

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// BookingRepository handles DB operations for one booking collection.
type BookingRepository struct {
	kind       Kind
	collection *mongo.Collection
}

// Repositories holds the classroom and lab repositories side by side.
type Repositories struct {
	Classroom *BookingRepository
	Lab       *BookingRepository
}

func NewBookingRepository(kind Kind, collection *mongo.Collection) *BookingRepository {
	return &BookingRepository{kind: kind, collection: collection}
}

func NewRepositories(store *config.Store) *Repositories {
	return &Repositories{
		Classroom: NewBookingRepository(Classroom, store.ClassroomBookings),
		Lab:       NewBookingRepository(Lab, store.LabBookings),
	}
}

func (r *BookingRepository) Kind() Kind {
	return r.kind
}

// FindAll returns every booking, most recently created first.
func (r *BookingRepository) FindAll(ctx context.Context) ([]Booking, error) {
	return r.find(ctx, bson.M{})
}

// FindByUser returns the bookings whose userEmail equals email exactly.
func (r *BookingRepository) FindByUser(ctx context.Context, email string) ([]Booking, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *BookingRepository) find(ctx context.Context, filter bson.M) ([]Booking, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("find %s bookings: %w", r.kind, err)
	}
	bookings := []Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode %s bookings: %w", r.kind, err)
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*Booking, error) {
	oid, err := r.objectID(id)
	if err != nil {
		return nil, err
	}
	var b Booking
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s booking: %w", r.kind, err)
	}
	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *Booking) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, b)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s booking: %w", r.kind, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert %s booking: unexpected id type %T", r.kind, res.InsertedID)
	}
	return oid, nil
}

// UpdateStatus sets status and updatedAt and nothing else.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.UpdateByID(ctx, oid, statusUpdate(status, updatedAt))
	if err != nil {
		return fmt.Errorf("update %s booking: %w", r.kind, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := r.objectID(id)
	if err != nil {
		return err
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s booking: %w", r.kind, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid %s booking id %q: %w", r.kind, id, err)
	}
	return oid, nil
}

func statusUpdate(status string, updatedAt time.Time) bson.M {
	return bson.M{"$set": bson.M{"status": status, "updatedAt": updatedAt}}
}
