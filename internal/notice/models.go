package notice

import (
	"time"

	"CSEPortal/pkg/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LatestLimit is how many notices /api/notices/latest returns.
const LatestLimit = 3

// Notice is a department announcement. The server owns the id and the dates;
// title, body and anything else the client sent live in Fields.
type Notice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date      time.Time          `bson:"date" json:"date"` // assigned on insert
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Fields    bson.M             `bson:",inline" json:"-"`
}

// serverKeys are dropped from a create body before insert.
var serverKeys = []string{"date", "updatedAt"}

func (n Notice) MarshalJSON() ([]byte, error) {
	type plain Notice
	return document.Flatten(plain(n), n.Fields)
}

// NoticeRequest is the set of fields a PUT may write.
type NoticeRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Link        string `json:"link"`
}

// CreateNoticeResponse acknowledges an insert.
type CreateNoticeResponse struct {
	Message  string `json:"message"`
	NoticeID string `json:"noticeId"`
}
