// internal/services/objectid.go
package services

import (
	apperrors "donation-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseObjectID rejects malformed identifiers before any storage call is made.
func parseObjectID(resource, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidIDError(resource)
	}
	return oid, nil
}
