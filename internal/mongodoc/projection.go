package mongodoc

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project replaces every ObjectID in doc, at any nesting depth, with its hex
// string form. Other values pass through untouched, so projecting an already
// projected document is a no-op.
func Project(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for key, value := range doc {
		out[key] = projectValue(value)
	}
	return out
}

func projectValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case bson.M:
		return Project(v)
	case map[string]interface{}:
		return Project(bson.M(v))
	case bson.D:
		return Project(v.Map())
	case bson.A:
		return projectSlice(v)
	case []interface{}:
		return projectSlice(v)
	case []primitive.ObjectID:
		hexed := make([]interface{}, 0, len(v))
		for _, id := range v {
			hexed = append(hexed, id.Hex())
		}
		return hexed
	default:
		return value
	}
}

func projectSlice(values []interface{}) []interface{} {
	out := make([]interface{}, 0, len(values))
	for _, value := range values {
		out = append(out, projectValue(value))
	}
	return out
}
