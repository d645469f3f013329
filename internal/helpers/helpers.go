package helpers

import (
	"fmt"
	"strings"

	"github.com/joshua-takyi/skillswap/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func StringTrim(s string) string {
	return strings.TrimSpace(s)
}

// ParseObjectID validates the identifier format up front so a malformed id
// comes back as a client error instead of surfacing as a store failure.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(StringTrim(id))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not a valid object id", models.ErrInvalidID, id)
	}
	return oid, nil
}
