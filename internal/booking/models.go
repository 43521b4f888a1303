package booking

import (
	"time"

	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusPending is assigned to every new booking. Later values are whatever
// the client sends (approved, rejected, ...).
const StatusPending = "pending"

// Kind tells the two booking collections apart.
type Kind string

const (
	Classroom Kind = "classroom"
	Lab       Kind = "lab"
)

// Booking is a classroom or lab reservation request. Status and the
// timestamps belong to the server; title, room, userEmail and the rest are
// whatever the client sent and live in Fields.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	Fields    bson.M             `bson:",inline" json:"-"`
}

// serverKeys are dropped from a create body before insert.
var serverKeys = []string{"status", "createdAt", "updatedAt"}

func (b Booking) MarshalJSON() ([]byte, error) {
	type plain Booking
	return document.Flatten(plain(b), b.Fields)
}

// UpdateStatusRequest is the only mutation a booking accepts.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateBookingResponse acknowledges an insert.
type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}
