package profile

import "strings"

// OtherSentinel is the enumerated choice that activates the free-text
// companion field of a main/other pair. Matched case-insensitively.
const OtherSentinel = "Other"

// FieldPair names a categorical field and its free-text override companion.
type FieldPair struct {
	Main  string
	Other string
}

// OtherPairs lists every main/other pair in the profile schema. The
// validator, the resolver and the audience groupings all work off this one
// table so a pair can never be checked on one side and forgotten on the
// other.
var OtherPairs = []FieldPair{
	{Main: "jainSect", Other: "jainSectOther"},
	{Main: "motherTongue", Other: "motherTongueOther"},
	{Main: "currentEducationStatus", Other: "currentEducationStatusOther"},
	{Main: "highestQualification", Other: "highestQualificationOther"},
	{Main: "fieldOfStudy", Other: "fieldOfStudyOther"},
	{Main: "employmentType", Other: "employmentTypeOther"},
	{Main: "industrySector", Other: "industrySectorOther"},
}

// IsOtherChoice reports whether a raw choice value selects the sentinel.
func IsOtherChoice(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), OtherSentinel)
}

// Resolve collapses a main/other pair to its display value. The main value
// wins unless it is the "Other" sentinel, in which case the free-text
// override is used. An empty result means the pair is unset; a main value of
// "Other" with no override resolves to the raw sentinel.
func Resolve(main, other string) string {
	main = strings.TrimSpace(main)
	other = strings.TrimSpace(other)
	if main != "" && !strings.EqualFold(main, OtherSentinel) {
		return main
	}
	if other != "" {
		return other
	}
	return main
}
