// Package document handles the client-owned part of stored documents. The
// server types only declare the keys the server assigns; everything else a
// client sends is kept as-is.
package document

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// Bind reads a JSON object request body into raw fields. An empty or null
// body yields an empty document.
func Bind(c echo.Context) (bson.M, error) {
	var fields bson.M
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = bson.M{}
	}
	return fields, nil
}

// Without returns a copy of fields minus _id and the reserved keys.
func Without(fields bson.M, reserved ...string) bson.M {
	out := make(bson.M, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	delete(out, "_id")
	for _, k := range reserved {
		delete(out, k)
	}
	return out
}

// Flatten renders v as a JSON object with the keys of fields merged in.
// Keys already present in v win.
func Flatten(v any, fields bson.M) ([]byte, error) {
	known, err := json.Marshal(v)
	if err != nil || len(fields) == 0 {
		return known, err
	}
	merged := make(map[string]json.RawMessage, len(fields)+4)
	for k, x := range fields {
		raw, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		merged[k] = raw
	}
	var server map[string]json.RawMessage
	if err := json.Unmarshal(known, &server); err != nil {
		return nil, err
	}
	for k, raw := range server {
		merged[k] = raw
	}
	return json.Marshal(merged)
}
