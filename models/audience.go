// models/audience.go
package models

import "time"

// AudienceType is one of the three directory groupings derived from the
// employment/education fields. A member can belong to both the job and
// business audiences at once; student never overlaps the other two.
type AudienceType string

const (
	AudienceJob      AudienceType = "job"
	AudienceBusiness AudienceType = "business"
	AudienceStudent  AudienceType = "student"
)

// ParseAudienceType validates a client-supplied type value.
func ParseAudienceType(s string) (AudienceType, bool) {
	switch AudienceType(s) {
	case AudienceJob, AudienceBusiness, AudienceStudent:
		return AudienceType(s), true
	default:
		return "", false
	}
}

// Category is a directory grouping key. Categories are plain strings, not
// stored entities, so the id doubles as the name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary is the flattened presentation record served in audience
// listings. Main/other pairs arrive already resolved.
type UserSummary struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Designation            string     `json:"designation,omitempty"`
	CompanyName            string     `json:"companyName,omitempty"`
	Industry               string     `json:"industry,omitempty"`
	FieldOfStudy           string     `json:"fieldOfStudy,omitempty"`
	City                   string     `json:"city,omitempty"`
	State                  string     `json:"state,omitempty"`
	Country                string     `json:"country,omitempty"`
	Pincode                string     `json:"pincode,omitempty"`
	ProfileCompletion      int        `json:"profileCompletion"`
	PhotoURL               string     `json:"photoUrl,omitempty"`
	EmploymentType         string     `json:"employmentType,omitempty"`
	WorkExperience         string     `json:"workExperience,omitempty"`
	BusinessKeywords       string     `json:"businessKeywords,omitempty"`
	WorkAddressCity        string     `json:"workAddressCity,omitempty"`
	HighestQualification   string     `json:"highestQualification,omitempty"`
	InstitutionName        string     `json:"institutionName,omitempty"`
	YearOfPassing          string     `json:"yearOfPassing,omitempty"`
	MaritalStatus          string     `json:"maritalStatus,omitempty"`
	Gender                 string     `json:"gender,omitempty"`
	DateOfBirth            *time.Time `json:"dateOfBirth,omitempty"`
	NativePlaceDistrict    string     `json:"nativePlaceDistrict,omitempty"`
	NativePlaceState       string     `json:"nativePlaceState,omitempty"`
	JainSect               string     `json:"jainSect,omitempty"`
	MotherTongue           string     `json:"motherTongue,omitempty"`
	LocalSanghSamitiName   string     `json:"localSanghSamitiName,omitempty"`
	LinkedInProfileLink    string     `json:"linkedInProfileLink,omitempty"`
	Facebook               string     `json:"facebook,omitempty"`
	Twitter                string     `json:"twitter,omitempty"`
	InstagramSocialLinks   string     `json:"instagramSocialLinks,omitempty"`
	FatherName             string     `json:"fatherName,omitempty"`
	MotherName             string     `json:"motherName,omitempty"`
	SpouseName             string     `json:"spouseName,omitempty"`
	IsEmployer             *bool      `json:"isEmployer,omitempty"`
	SpecialSkills          string     `json:"specialSkills,omitempty"`
	AcademicAchievements   string     `json:"academicAchievements,omitempty"`
	CurrentEducationStatus string     `json:"currentEducationStatus,omitempty"`
}

// AudienceStats is the aggregate served by the stats endpoint.
type AudienceStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	CompleteProfiles int64 `json:"completeProfiles"`
}
