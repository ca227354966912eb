package userRepo

import (
	"fmt"
	"regexp"
	"time"

	"sanyukt/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// audienceFilter builds the employment-type filter for an audience. The
// matching is kept deliberately loose: equality for the plain types plus a
// whitespace-tolerant substring match on the combined "Job & Business" label.
func audienceFilter(audience models.AudienceType) bson.M {
	combined := bson.M{"employmentType": primitive.Regex{Pattern: `Job\s*&\s*Business`, Options: "i"}}
	switch audience {
	case models.AudienceJob:
		return bson.M{"$or": bson.A{
			bson.M{"employmentType": primitive.Regex{Pattern: `^Job$`, Options: "i"}},
			combined,
		}}
	case models.AudienceBusiness:
		return bson.M{"$or": bson.A{
			bson.M{"employmentType": primitive.Regex{Pattern: `^Business$`, Options: "i"}},
			combined,
		}}
	default:
		return bson.M{"employmentType": primitive.Regex{Pattern: `^Student$`, Options: "i"}}
	}
}

// categoryFilter matches category against the raw main or other field of the
// grouping pair, exact and case-insensitive.
func categoryFilter(audience models.AudienceType, category string) bson.M {
	pattern := primitive.Regex{Pattern: `^` + regexp.QuoteMeta(category) + `$`, Options: "i"}
	mainField, otherField := "industrySector", "industrySectorOther"
	if audience == models.AudienceStudent {
		mainField, otherField = "fieldOfStudy", "fieldOfStudyOther"
	}
	return bson.M{"$or": bson.A{
		bson.M{mainField: pattern},
		bson.M{otherField: pattern},
	}}
}

// FindByAudience retrieves users matching an audience type and optional
// category, streaming the matching subset through a cursor.
func (r *MongoUserRepo) FindByAudience(audience models.AudienceType, category string, projection bson.M) ([]models.User, error) {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	filter := audienceFilter(audience)
	if category != "" {
		filter = bson.M{"$and": bson.A{filter, categoryFilter(audience, category)}}
	}

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query audience %s: %w", audience, err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("audience cursor failed: %w", err)
	}
	return users, nil
}
