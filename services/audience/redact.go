package audience

// sensitiveFields are the contact and location attributes hidden from
// viewers below the completion threshold.
var sensitiveFields = []string{
	"primaryPhone",
	"primaryEmail",
	"alternateContactNumber",
	"additionalEmail",
	"fullResidentialAddress",
	"city",
	"state",
	"country",
	"pincode",
}

// RedactSensitive nulls the contact/location fields on a profile view. It is
// the single redaction policy for every cross-member view; callers decide
// visibility with CanSeeSensitive and apply this unconditionally when the
// answer is no.
func RedactSensitive(view map[string]any) {
	for _, f := range sensitiveFields {
		view[f] = nil
	}
}

// CanSeeSensitive is the threshold gate: purely a function of the viewer's
// own completion score, never of anything the target has chosen.
func CanSeeSensitive(viewerCompletion int) bool {
	return viewerCompletion >= SensitiveCompletionThreshold
}
