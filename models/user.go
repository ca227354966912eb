// models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// User is a community member document. The identity fields come from the
// auth provider; the six profile modules are filled in by the member through
// the validated profile-update path.
type User struct {
	ID                string    `bson:"id" json:"id"`
	FirebaseUID       string    `bson:"firebaseUid" json:"-"`
	Name              string    `bson:"name" json:"name"`
	PrimaryEmail      string    `bson:"primaryEmail" json:"primaryEmail"`
	PrimaryPhone      string    `bson:"primaryPhone,omitempty" json:"primaryPhone,omitempty"`
	PhotoURL          string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	ProfileCompletion int       `bson:"profileCompletion" json:"profileCompletion"`
	Roles             []string  `bson:"roles" json:"roles"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`

	// Module 1: Core Identity & Census
	FullName               string     `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Gender                 string     `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth            *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	BloodGroup             string     `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	AadhaarOrPassport      string     `bson:"aadhaarOrPassport,omitempty" json:"aadhaarOrPassport,omitempty"`
	Country                string     `bson:"country,omitempty" json:"country,omitempty"`
	State                  string     `bson:"state,omitempty" json:"state,omitempty"`
	City                   string     `bson:"city,omitempty" json:"city,omitempty"`
	Pincode                string     `bson:"pincode,omitempty" json:"pincode,omitempty"`
	FullResidentialAddress string     `bson:"fullResidentialAddress,omitempty" json:"fullResidentialAddress,omitempty"`
	NativePlaceDistrict    string     `bson:"nativePlaceDistrict,omitempty" json:"nativePlaceDistrict,omitempty"`
	NativePlaceState       string     `bson:"nativePlaceState,omitempty" json:"nativePlaceState,omitempty"`

	// Module 2: Community & Lineage
	JainSect             string `bson:"jainSect,omitempty" json:"jainSect,omitempty"`
	JainSectOther        string `bson:"jainSectOther,omitempty" json:"jainSectOther,omitempty"`
	GadhGachhSampradaya  string `bson:"gadhGachhSampradaya,omitempty" json:"gadhGachhSampradaya,omitempty"`
	MotherTongue         string `bson:"motherTongue,omitempty" json:"motherTongue,omitempty"`
	MotherTongueOther    string `bson:"motherTongueOther,omitempty" json:"motherTongueOther,omitempty"`
	LocalSanghSamitiName string `bson:"localSanghSamitiName,omitempty" json:"localSanghSamitiName,omitempty"`

	// Module 3: Educational Background
	CurrentEducationStatus      string `bson:"currentEducationStatus,omitempty" json:"currentEducationStatus,omitempty"`
	CurrentEducationStatusOther string `bson:"currentEducationStatusOther,omitempty" json:"currentEducationStatusOther,omitempty"`
	HighestQualification        string `bson:"highestQualification,omitempty" json:"highestQualification,omitempty"`
	HighestQualificationOther   string `bson:"highestQualificationOther,omitempty" json:"highestQualificationOther,omitempty"`
	FieldOfStudy                string `bson:"fieldOfStudy,omitempty" json:"fieldOfStudy,omitempty"`
	FieldOfStudyOther           string `bson:"fieldOfStudyOther,omitempty" json:"fieldOfStudyOther,omitempty"`
	InstitutionName             string `bson:"institutionName,omitempty" json:"institutionName,omitempty"`
	YearOfPassing               string `bson:"yearOfPassing,omitempty" json:"yearOfPassing,omitempty"`
	AcademicAchievements        string `bson:"academicAchievements,omitempty" json:"academicAchievements,omitempty"`
	SpecialSkills               string `bson:"specialSkills,omitempty" json:"specialSkills,omitempty"`

	// Module 4: Professional & Business
	EmploymentType      string `bson:"employmentType,omitempty" json:"employmentType,omitempty"`
	EmploymentTypeOther string `bson:"employmentTypeOther,omitempty" json:"employmentTypeOther,omitempty"`
	IndustrySector      string `bson:"industrySector,omitempty" json:"industrySector,omitempty"`
	IndustrySectorOther string `bson:"industrySectorOther,omitempty" json:"industrySectorOther,omitempty"`
	Designation         string `bson:"designation,omitempty" json:"designation,omitempty"`
	CompanyName         string `bson:"companyName,omitempty" json:"companyName,omitempty"`
	WorkAddressCity     string `bson:"workAddressCity,omitempty" json:"workAddressCity,omitempty"`
	WorkExperience      string `bson:"workExperience,omitempty" json:"workExperience,omitempty"`
	BusinessKeywords    string `bson:"businessKeywords,omitempty" json:"businessKeywords,omitempty"`
	IsEmployer          *bool  `bson:"isEmployer,omitempty" json:"isEmployer,omitempty"`

	// Module 5: Family Structure
	MaritalStatus    string `bson:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`
	FatherName       string `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	FatherOccupation string `bson:"fatherOccupation,omitempty" json:"fatherOccupation,omitempty"`
	MotherName       string `bson:"motherName,omitempty" json:"motherName,omitempty"`
	MotherOccupation string `bson:"motherOccupation,omitempty" json:"motherOccupation,omitempty"`
	SpouseName       string `bson:"spouseName,omitempty" json:"spouseName,omitempty"`
	SpouseOccupation string `bson:"spouseOccupation,omitempty" json:"spouseOccupation,omitempty"`
	NumberOfChildren *int   `bson:"numberOfChildren,omitempty" json:"numberOfChildren,omitempty"`
	FamilySize       *int   `bson:"familySize,omitempty" json:"familySize,omitempty"`
	FamilyID         string `bson:"familyId,omitempty" json:"familyId,omitempty"`

	// Module 6: Communication & Social. Primary contacts come from auth;
	// additionalEmails/additionalPhones are deprecated multi-valued fields
	// still present on old documents.
	AlternateContactNumber string   `bson:"alternateContactNumber,omitempty" json:"alternateContactNumber,omitempty"`
	LinkedInProfileLink    string   `bson:"linkedInProfileLink,omitempty" json:"linkedInProfileLink,omitempty"`
	InstagramSocialLinks   string   `bson:"instagramSocialLinks,omitempty" json:"instagramSocialLinks,omitempty"`
	Facebook               string   `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter                string   `bson:"twitter,omitempty" json:"twitter,omitempty"`
	AdditionalEmail        string   `bson:"additionalEmail,omitempty" json:"additionalEmail,omitempty"`
	AdditionalEmails       []string `bson:"additionalEmails,omitempty" json:"-"`
	AdditionalPhones       []string `bson:"additionalPhones,omitempty" json:"-"`
}

// AsMap renders the user as a flat document keyed by bson field name, the
// same view the validator and completion scorer work over.
func (u *User) AsMap() (map[string]any, error) {
	raw, err := bson.Marshal(u)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	for _, r := range u.Roles {
		if r == "admin" {
			return true
		}
	}
	return false
}
