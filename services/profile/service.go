package profile

import (
	"fmt"

	userRepo "sanyukt/database/repository/user"
	"sanyukt/models"
	"sanyukt/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProfileService exposes the member-facing profile operations.
type ProfileService interface {
	// GetProfile returns the caller's own full profile.
	GetProfile(userID string) (*models.User, error)
	// UpdateProfile validates and applies a partial profile update, then
	// recomputes the completion score as part of the same write.
	UpdateProfile(userID string, update map[string]any) (*models.User, error)
	// GetOptions returns the static dropdown choices per profile field.
	GetOptions() map[string][]string
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo      userRepo.UserRepository
	Checklist Checklist
}

// GetProfile returns the caller's profile. The deprecated additionalEmails
// list is folded into the singular field for old documents.
func (s *DefaultProfileService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.AdditionalEmail == "" && len(user.AdditionalEmails) > 0 {
		user.AdditionalEmail = user.AdditionalEmails[0]
	}
	return user, nil
}

// UpdateProfile runs the full validated-update path: strip system fields,
// migrate deprecated contact lists, check the merged view against the pair
// and format rules, rescore completion and persist everything in one atomic
// write. Nothing is persisted on a validation failure.
func (s *DefaultProfileService) UpdateProfile(userID string, update map[string]any) (*models.User, error) {
	logger := utils.GetLogger()

	user, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	StripImmutableFields(update)
	unset := MigrateLegacyContacts(update)

	existing, err := user.AsMap()
	if err != nil {
		return nil, fmt.Errorf("failed to render profile document: %w", err)
	}

	if err := ValidateUpdate(existing, update); err != nil {
		logger.Debug("Profile update rejected",
			zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	merged := make(map[string]any, len(existing)+len(update))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range update {
		merged[k] = v
	}
	for _, f := range unset {
		delete(merged, f)
	}

	set := bson.M{}
	for k, v := range update {
		set[k] = v
	}
	set["profileCompletion"] = s.Checklist.Score(merged)

	updated, err := s.Repo.UpdateFields(userID, set, unset)
	if err != nil {
		logger.Error("Failed to persist profile update",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	if updated.AdditionalEmail == "" && len(updated.AdditionalEmails) > 0 {
		updated.AdditionalEmail = updated.AdditionalEmails[0]
	}
	return updated, nil
}

// GetOptions returns the dropdown option lists. The result is copied so
// callers cannot mutate the shared tables.
func (s *DefaultProfileService) GetOptions() map[string][]string {
	out := make(map[string][]string, len(Options))
	for field, choices := range Options {
		out[field] = append([]string(nil), choices...)
	}
	return out
}
