package gallery

import (
	"time"

	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is one image in the department gallery. Only the id and createdAt
// are server fields; category, imageUrl and the rest live in Fields.
type Photo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Fields    bson.M             `bson:",inline" json:"-"`
}

func (p Photo) MarshalJSON() ([]byte, error) {
	type plain Photo
	return document.Flatten(plain(p), p.Fields)
}

type CreatePhotoResponse struct {
	Message string `json:"message"`
	PhotoID string `json:"photoId"`
}
