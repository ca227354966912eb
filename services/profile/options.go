package profile

// Options maps each dropdown field of the profile form to its allowed
// choices. Static configuration: the lists are served to clients as-is and
// every list with a *Other companion field ends in the "Other" sentinel.
var Options = map[string][]string{
	"gender": {"Male", "Female", "Prefer not to say"},
	"bloodGroup": {
		"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-",
	},
	"jainSect": {
		"Digambar", "Shwetambar", "Sthanakvasi", "Terapanthi", "Other",
	},
	"motherTongue": {
		"Hindi", "Gujarati", "Marwari", "Marathi", "Kannada", "Rajasthani", "Other",
	},
	"currentEducationStatus": {
		"School", "Undergraduate", "Postgraduate", "Doctorate", "Not Studying", "Other",
	},
	"highestQualification": {
		"Below 10th", "10th Pass", "12th Pass", "Diploma", "Graduate",
		"Post Graduate", "Doctorate", "Other",
	},
	"fieldOfStudy": {
		"Engineering", "Medicine", "Commerce", "Arts", "Science",
		"Law", "Management", "Other",
	},
	"employmentType": {
		"Job", "Business", "Job & Business", "Student", "Homemaker",
		"Retired", "Not Working", "Other",
	},
	"industrySector": {
		"Information Technology", "Manufacturing", "Textiles", "Jewellery",
		"Finance", "Healthcare", "Education", "Real Estate", "Retail",
		"Agriculture", "Other",
	},
	"maritalStatus": {
		"Single", "Married", "Widowed", "Divorced",
	},
}
