package audience

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	userRepo "sanyukt/database/repository/user"
	"sanyukt/models"
	"sanyukt/services/profile"

	"go.mongodb.org/mongo-driver/bson"
)

// AudienceService serves the member directory: category listings, member
// lists per category, the gated member detail view and aggregate stats.
type AudienceService interface {
	ListCategories(audience models.AudienceType) ([]models.Category, error)
	ListUsersByCategory(audience models.AudienceType, category string) ([]models.UserSummary, error)
	// ListUsersByLegacyCategory serves the old path-segment category ids.
	// Unknown ids map to no audience and an empty list, never an error.
	ListUsersByLegacyCategory(categoryID string) (models.AudienceType, []models.UserSummary, error)
	// GetUserDetail returns the target's profile view and whether the viewer
	// cleared the sensitive-field threshold.
	GetUserDetail(viewerID, targetID string) (map[string]any, bool, error)
	GetStats() (*models.AudienceStats, error)
}

// DefaultAudienceService is the production implementation.
type DefaultAudienceService struct {
	Repo userRepo.UserRepository
}

// categoryProjection limits category scans to the grouping pair.
func categoryProjection(audience models.AudienceType) bson.M {
	if audience == models.AudienceStudent {
		return bson.M{"fieldOfStudy": 1, "fieldOfStudyOther": 1}
	}
	return bson.M{"industrySector": 1, "industrySectorOther": 1}
}

// ListCategories returns the deduplicated, lexicographically sorted category
// names present among members of an audience.
func (s *DefaultAudienceService) ListCategories(audience models.AudienceType) ([]models.Category, error) {
	users, err := s.Repo.FindByAudience(audience, "", categoryProjection(audience))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	for i := range users {
		key := CategoryKey(audience, &users[i])
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, key)
	}
	sort.Strings(names)

	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, models.Category{ID: name, Name: name})
	}
	return categories, nil
}

// ListUsersByCategory returns presentation summaries for every member of an
// audience, optionally narrowed to one category.
func (s *DefaultAudienceService) ListUsersByCategory(audience models.AudienceType, category string) ([]models.UserSummary, error) {
	users, err := s.Repo.FindByAudience(audience, strings.TrimSpace(category), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list audience members: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, buildSummary(&users[i]))
	}
	return summaries, nil
}

// ListUsersByLegacyCategory maps an old category id to its audience type and
// serves the full, unfiltered member list for it.
func (s *DefaultAudienceService) ListUsersByLegacyCategory(categoryID string) (models.AudienceType, []models.UserSummary, error) {
	audienceType, ok := LegacyAudienceType(categoryID)
	if !ok {
		return "", []models.UserSummary{}, nil
	}
	users, err := s.ListUsersByCategory(audienceType, "")
	if err != nil {
		return audienceType, nil, err
	}
	return audienceType, users, nil
}

// GetUserDetail loads viewer and target and serves the target's view with
// the threshold-gated redaction applied.
func (s *DefaultAudienceService) GetUserDetail(viewerID, targetID string) (map[string]any, bool, error) {
	if viewerID == "" {
		return nil, false, ErrUnauthorized
	}

	viewer, err := s.Repo.GetByID(viewerID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load viewer: %w", err)
	}
	target, err := s.Repo.GetByID(targetID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load target user: %w", err)
	}
	if viewer == nil || target == nil {
		return nil, false, ErrUserNotFound
	}

	view, err := buildDetailView(target)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build user view: %w", err)
	}

	canSee := CanSeeSensitive(viewer.ProfileCompletion)
	if !canSee {
		RedactSensitive(view)
	}
	return view, canSee, nil
}

// GetStats returns the directory aggregates.
func (s *DefaultAudienceService) GetStats() (*models.AudienceStats, error) {
	total, err := s.Repo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	complete, err := s.Repo.CountByMinCompletion(SensitiveCompletionThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to count complete profiles: %w", err)
	}
	return &models.AudienceStats{TotalUsers: total, CompleteProfiles: complete}, nil
}

// buildSummary flattens a member document into the listing shape, resolving
// every main/other pair to its display value.
func buildSummary(u *models.User) models.UserSummary {
	name := u.FullName
	if name == "" {
		name = u.Name
	}
	return models.UserSummary{
		ID:                     u.ID,
		Name:                   name,
		Designation:            u.Designation,
		CompanyName:            u.CompanyName,
		Industry:               profile.Resolve(u.IndustrySector, u.IndustrySectorOther),
		FieldOfStudy:           profile.Resolve(u.FieldOfStudy, u.FieldOfStudyOther),
		City:                   u.City,
		State:                  u.State,
		Country:                u.Country,
		Pincode:                u.Pincode,
		ProfileCompletion:      u.ProfileCompletion,
		PhotoURL:               u.PhotoURL,
		EmploymentType:         profile.Resolve(u.EmploymentType, u.EmploymentTypeOther),
		WorkExperience:         u.WorkExperience,
		BusinessKeywords:       u.BusinessKeywords,
		WorkAddressCity:        u.WorkAddressCity,
		HighestQualification:   profile.Resolve(u.HighestQualification, u.HighestQualificationOther),
		InstitutionName:        u.InstitutionName,
		YearOfPassing:          u.YearOfPassing,
		MaritalStatus:          u.MaritalStatus,
		Gender:                 u.Gender,
		DateOfBirth:            u.DateOfBirth,
		NativePlaceDistrict:    u.NativePlaceDistrict,
		NativePlaceState:       u.NativePlaceState,
		JainSect:               profile.Resolve(u.JainSect, u.JainSectOther),
		MotherTongue:           profile.Resolve(u.MotherTongue, u.MotherTongueOther),
		LocalSanghSamitiName:   u.LocalSanghSamitiName,
		LinkedInProfileLink:    u.LinkedInProfileLink,
		Facebook:               u.Facebook,
		Twitter:                u.Twitter,
		InstagramSocialLinks:   u.InstagramSocialLinks,
		FatherName:             u.FatherName,
		MotherName:             u.MotherName,
		SpouseName:             u.SpouseName,
		IsEmployer:             u.IsEmployer,
		SpecialSkills:          u.SpecialSkills,
		AcademicAchievements:   u.AcademicAchievements,
		CurrentEducationStatus: profile.Resolve(u.CurrentEducationStatus, u.CurrentEducationStatusOther),
	}
}

// buildDetailView renders the full member document for the detail endpoint,
// overlaying resolved values on every main/other pair. The JSON round-trip
// keeps provider internals (firebaseUid, deprecated lists) out of the view.
func buildDetailView(u *models.User) (map[string]any, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	var view map[string]any
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, err
	}

	overlay := func(key, main, other string) {
		if resolved := profile.Resolve(main, other); resolved != "" {
			view[key] = resolved
		} else {
			view[key] = nil
		}
	}
	overlay("jainSect", u.JainSect, u.JainSectOther)
	overlay("motherTongue", u.MotherTongue, u.MotherTongueOther)
	overlay("currentEducationStatus", u.CurrentEducationStatus, u.CurrentEducationStatusOther)
	overlay("highestQualification", u.HighestQualification, u.HighestQualificationOther)
	overlay("fieldOfStudy", u.FieldOfStudy, u.FieldOfStudyOther)
	overlay("employmentType", u.EmploymentType, u.EmploymentTypeOther)
	overlay("industrySector", u.IndustrySector, u.IndustrySectorOther)
	overlay("industry", u.IndustrySector, u.IndustrySectorOther)

	if u.AdditionalEmail == "" && len(u.AdditionalEmails) > 0 {
		view["additionalEmail"] = u.AdditionalEmails[0]
	}
	return view, nil
}
