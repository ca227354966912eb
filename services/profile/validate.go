package profile

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// immutableFields are never client-writable and are silently dropped from
// incoming updates.
var immutableFields = []string{
	"id",
	"_id",
	"firebaseUid",
	"primaryEmail",
	"roles",
	"profileCompletion",
	"createdAt",
	"updatedAt",
	"__v",
}

var (
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	lettersRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	emailRe   = regexp.MustCompile(`^[\w.-]+@[\w-]+(\.[\w-]+)+$`)
	phoneRe   = regexp.MustCompile(`^[\d+\-\s]{10,15}$`)
)

// fieldRule is one entry of the declarative validation table: the check runs
// against the merged (update-over-existing) value of its field whenever that
// value is non-blank.
type fieldRule struct {
	field   string
	check   func(v any) bool
	message string
}

func matches(re *regexp.Regexp) func(v any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(strings.TrimSpace(s))
	}
}

func linkRule(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func intInRange(min, max int) func(v any) bool {
	return func(v any) bool {
		n, ok := asInt(v)
		return ok && n >= min && n <= max
	}
}

// fieldKind is the stored type of a writable document field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
	kindTime
)

// fieldKinds is the writable document schema: every client-settable field and
// its stored type. Update values are checked against it before anything
// reaches the database; fields outside the table are dropped the same way the
// immutable ones are, so an update can never write a value the document model
// cannot decode.
var fieldKinds = func() map[string]fieldKind {
	kinds := map[string]fieldKind{
		"dateOfBirth":      kindTime,
		"isEmployer":       kindBool,
		"numberOfChildren": kindInt,
		"familySize":       kindInt,
	}
	for _, f := range []string{
		"name", "primaryPhone", "photoUrl",
		"fullName", "gender", "bloodGroup", "aadhaarOrPassport",
		"country", "state", "city", "pincode", "fullResidentialAddress",
		"nativePlaceDistrict", "nativePlaceState",
		"jainSect", "jainSectOther", "gadhGachhSampradaya",
		"motherTongue", "motherTongueOther", "localSanghSamitiName",
		"currentEducationStatus", "currentEducationStatusOther",
		"highestQualification", "highestQualificationOther",
		"fieldOfStudy", "fieldOfStudyOther", "institutionName",
		"yearOfPassing", "academicAchievements", "specialSkills",
		"employmentType", "employmentTypeOther",
		"industrySector", "industrySectorOther",
		"designation", "companyName", "workAddressCity", "workExperience",
		"businessKeywords", "maritalStatus",
		"fatherName", "fatherOccupation", "motherName", "motherOccupation",
		"spouseName", "spouseOccupation", "familyId",
		"alternateContactNumber", "linkedInProfileLink",
		"instagramSocialLinks", "facebook", "twitter", "additionalEmail",
	} {
		kinds[f] = kindString
	}
	return kinds
}()

// coerceTypes checks every update value against the document schema and
// normalizes it to its stored representation: integral numbers become ints,
// RFC 3339 strings become time values. A mismatch is a ValidationError and
// nothing gets written; unknown fields are silently dropped.
func coerceTypes(update map[string]any) error {
	for field, v := range update {
		kind, known := fieldKinds[field]
		if !known {
			delete(update, field)
			continue
		}
		if v == nil {
			continue
		}
		switch kind {
		case kindString:
			if _, ok := v.(string); !ok {
				return &ValidationError{Field: field, Message: "must be text"}
			}
		case kindInt:
			n, ok := asInt(v)
			if !ok {
				return &ValidationError{Field: field, Message: "must be a whole number"}
			}
			update[field] = n
		case kindBool:
			if _, ok := v.(bool); !ok {
				return &ValidationError{Field: field, Message: "must be true or false"}
			}
		case kindTime:
			switch t := v.(type) {
			case time.Time:
				// already the stored representation
			case string:
				parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(t))
				if err != nil {
					return &ValidationError{Field: field, Message: "must be an RFC 3339 date"}
				}
				update[field] = parsed
			default:
				return &ValidationError{Field: field, Message: "must be an RFC 3339 date"}
			}
		}
	}
	return nil
}

var fieldRules = []fieldRule{
	{"aadhaarOrPassport", matches(aadhaarRe), "must be exactly 12 digits"},
	{"pincode", matches(pincodeRe), "must be exactly 6 digits"},
	{"city", matches(lettersRe), "must contain only letters and spaces"},
	{"fullName", matches(lettersRe), "must contain only letters and spaces"},
	{"fatherName", matches(lettersRe), "must contain only letters and spaces"},
	{"motherName", matches(lettersRe), "must contain only letters and spaces"},
	{"spouseName", matches(lettersRe), "must contain only letters and spaces"},
	{"numberOfChildren", intInRange(0, 9), "must be a whole number between 0 and 9"},
	{"familySize", intInRange(0, 99), "must be a whole number between 0 and 99"},
	{"additionalEmail", matches(emailRe), "must be a valid email address"},
	{"alternateContactNumber", matches(phoneRe), "must be 10 to 15 characters of digits, +, - or spaces"},
	{"linkedInProfileLink", linkRule, "must start with http:// or https://"},
	{"instagramSocialLinks", linkRule, "must start with http:// or https://"},
	{"facebook", linkRule, "must start with http:// or https://"},
	{"twitter", linkRule, "must start with http:// or https://"},
}

// StripImmutableFields removes system-owned fields from an update in place.
func StripImmutableFields(update map[string]any) {
	for _, f := range immutableFields {
		delete(update, f)
	}
}

// MigrateLegacyContacts folds the deprecated additionalEmails list into the
// singular additionalEmail field and returns the deprecated list fields that
// must be unset on the stored document. Deprecated lists never survive an
// update.
func MigrateLegacyContacts(update map[string]any) []string {
	if emails, ok := asStringSlice(update["additionalEmails"]); ok && len(emails) > 0 {
		if first := strings.TrimSpace(emails[0]); first != "" {
			update["additionalEmail"] = first
		}
	}
	delete(update, "additionalEmails")
	delete(update, "additionalPhones")
	return []string{"additionalEmails", "additionalPhones"}
}

// ValidateUpdate checks an update against the merged view of the stored
// document. The first violated rule wins. Schema type checks run first and
// normalize the update in place, then main/other pair consistency, then the
// per-field format table.
func ValidateUpdate(existing, update map[string]any) error {
	if err := coerceTypes(update); err != nil {
		return err
	}

	merged := func(field string) any {
		if v, ok := update[field]; ok {
			return v
		}
		return existing[field]
	}

	for _, pair := range OtherPairs {
		mainVal, _ := merged(pair.Main).(string)
		if !IsOtherChoice(mainVal) {
			continue
		}
		otherVal, _ := merged(pair.Other).(string)
		if strings.TrimSpace(otherVal) == "" {
			return &ValidationError{
				Field:   pair.Main,
				Message: fmt.Sprintf("please specify details for %q when %q is selected", pair.Main, OtherSentinel),
			}
		}
	}

	for _, rule := range fieldRules {
		v := merged(rule.field)
		if isBlank(v) {
			continue
		}
		if !rule.check(v) {
			return &ValidationError{Field: rule.field, Message: rule.message}
		}
	}
	return nil
}

// isBlank mirrors the "present but empty after trim is absent" policy.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// asInt accepts the numeric shapes a JSON body or a bson document can carry.
// Fractional values do not count as integers.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	case float32:
		if n != float32(int32(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}
