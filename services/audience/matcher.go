package audience

import (
	"regexp"
	"strings"

	"sanyukt/models"
	"sanyukt/services/profile"
)

// SensitiveCompletionThreshold is the completion score a viewer needs before
// contact and location fields of other members become visible.
const SensitiveCompletionThreshold = 75

// Employment-type labels the predicates match against.
const (
	employmentJob      = "Job"
	employmentBusiness = "Business"
	employmentStudent  = "Student"
)

// combinedRe matches the combined "Job & Business" label with any spacing
// around the ampersand.
var combinedRe = regexp.MustCompile(`(?i)job\s*&\s*business`)

// Matches reports whether an employment-type value places a member in the
// given audience. Job and business both accept the combined label, so a
// member can belong to both at once; student is exact-match only.
func Matches(audience models.AudienceType, employmentType string) bool {
	emp := strings.TrimSpace(employmentType)
	switch audience {
	case models.AudienceJob:
		return strings.EqualFold(emp, employmentJob) || combinedRe.MatchString(emp)
	case models.AudienceBusiness:
		return strings.EqualFold(emp, employmentBusiness) || combinedRe.MatchString(emp)
	case models.AudienceStudent:
		return strings.EqualFold(emp, employmentStudent)
	default:
		return false
	}
}

// CategoryKey resolves a member to their directory grouping: industry for
// the job/business audiences, field of study for students. Empty means the
// member has not filled the grouping pair.
func CategoryKey(audience models.AudienceType, u *models.User) string {
	if audience == models.AudienceStudent {
		return profile.Resolve(u.FieldOfStudy, u.FieldOfStudyOther)
	}
	return profile.Resolve(u.IndustrySector, u.IndustrySectorOther)
}

// legacyCategoryTypes maps old-style path-segment category ids to audience
// types. Identifiers outside the map yield an empty result, not an error.
var legacyCategoryTypes = map[string]models.AudienceType{
	"business": models.AudienceBusiness,
	"jobs":     models.AudienceJob,
	"job":      models.AudienceJob,
	"student":  models.AudienceStudent,
}

// LegacyAudienceType translates a legacy category id to its audience type.
func LegacyAudienceType(categoryID string) (models.AudienceType, bool) {
	t, ok := legacyCategoryTypes[strings.ToLower(strings.TrimSpace(categoryID))]
	return t, ok
}
