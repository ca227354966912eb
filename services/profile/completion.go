package profile

import (
	"math"
	"strings"
)

// Checklist is the versioned set of fields counted toward the completion
// percentage. It is an explicit value injected into scoring: changing it
// rescores every stored profile, so it only changes by bumping the version.
type Checklist struct {
	Version string
	Fields  []string
}

// DefaultChecklist is checklist v1: every member-editable profile field plus
// the identity fields the auth provider seeds (name, photo, phone). System
// fields (ids, timestamps, roles, the score itself) are excluded.
var DefaultChecklist = Checklist{
	Version: "v1",
	Fields: []string{
		"name",
		"fullName",
		"gender",
		"dateOfBirth",
		"bloodGroup",
		"aadhaarOrPassport",
		"country",
		"state",
		"city",
		"pincode",
		"fullResidentialAddress",
		"nativePlaceDistrict",
		"nativePlaceState",
		"photoUrl",
		"jainSect",
		"jainSectOther",
		"gadhGachhSampradaya",
		"motherTongue",
		"motherTongueOther",
		"localSanghSamitiName",
		"currentEducationStatus",
		"currentEducationStatusOther",
		"highestQualification",
		"highestQualificationOther",
		"fieldOfStudy",
		"fieldOfStudyOther",
		"institutionName",
		"yearOfPassing",
		"academicAchievements",
		"specialSkills",
		"employmentType",
		"employmentTypeOther",
		"industrySector",
		"industrySectorOther",
		"designation",
		"companyName",
		"workAddressCity",
		"workExperience",
		"businessKeywords",
		"isEmployer",
		"maritalStatus",
		"fatherName",
		"fatherOccupation",
		"motherName",
		"motherOccupation",
		"spouseName",
		"spouseOccupation",
		"numberOfChildren",
		"familySize",
		"familyId",
		"primaryPhone",
		"alternateContactNumber",
		"linkedInProfileLink",
		"instagramSocialLinks",
		"facebook",
		"twitter",
		"additionalEmail",
	},
}

// Score computes the completion percentage of a profile document over the
// checklist: round(100 * filled / total), capped at 100.
func (c Checklist) Score(doc map[string]any) int {
	if len(c.Fields) == 0 {
		return 0
	}
	filled := 0
	for _, field := range c.Fields {
		if isFilled(doc[field]) {
			filled++
		}
	}
	pct := int(math.Round(float64(filled) / float64(len(c.Fields)) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// isFilled reports whether a document value counts toward completion:
// non-nil, non-blank if textual, non-empty if a sequence.
func isFilled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	default:
		return true
	}
}
