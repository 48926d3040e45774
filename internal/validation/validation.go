package validation

import "regexp"

var (
	emailRegexp   = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegexp   = regexp.MustCompile(`^(?:(?:\+|0{0,2})91(?:\s*-\s*)?|0?)?[6789][0-9]{9}$`)
	pincodeRegexp = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	objectIDHex   = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

	upperRegexp  = regexp.MustCompile(`[A-Z]`)
	lowerRegexp  = regexp.MustCompile(`[a-z]`)
	digitRegexp  = regexp.MustCompile(`[0-9]`)
	symbolRegexp = regexp.MustCompile(`[#?!@$%^&*-]`)
)

// IsValidEmail reports whether s matches the email grammar.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidPhone reports whether s is an Indian mobile number: ten digits with
// a leading 6-9, optionally prefixed by +91, 91, 091, 0091 or a single 0.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// IsValidPincode reports whether s is a six digit pincode without a leading zero.
func IsValidPincode(s string) bool {
	return pincodeRegexp.MatchString(s)
}

// IsValidObjectID reports whether s is a 24 character hex document id.
func IsValidObjectID(s string) bool {
	return objectIDHex.MatchString(s)
}

// IsValidPasswordLength reports whether the plaintext length is within 8-15.
func IsValidPasswordLength(s string) bool {
	return len(s) >= 8 && len(s) <= 15
}

// IsValidPassword reports whether the plaintext satisfies the composition
// policy: at least one uppercase letter, one lowercase letter, one digit and
// one symbol from the allowed set.
func IsValidPassword(s string) bool {
	if !IsValidPasswordLength(s) {
		return false
	}
	return upperRegexp.MatchString(s) &&
		lowerRegexp.MatchString(s) &&
		digitRegexp.MatchString(s) &&
		symbolRegexp.MatchString(s)
}
