package userRepo

import (
	"sanyukt/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access for member documents.
type UserRepository interface {
	// GetByID retrieves a user by internal id. Returns (nil, nil) when the
	// user does not exist.
	GetByID(id string) (*models.User, error)
	// GetByFirebaseUID retrieves a user by the identity-provider subject id.
	// Returns (nil, nil) when the user does not exist.
	GetByFirebaseUID(uid string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a single atomic $set/$unset to one user document
	// and returns the updated document. Returns (nil, nil) when the user
	// does not exist.
	UpdateFields(id string, set bson.M, unset []string) (*models.User, error)
	// FindByAudience retrieves users matching an audience type and, when
	// category is non-empty, whose industry/field-of-study pair matches it
	// case-insensitively. Pass nil projection for full documents.
	FindByAudience(audience models.AudienceType, category string, projection bson.M) ([]models.User, error)
	// CountUsers returns the total number of members.
	CountUsers() (int64, error)
	// CountByMinCompletion counts members with a completion score >= min.
	CountByMinCompletion(min int) (int64, error)
}
