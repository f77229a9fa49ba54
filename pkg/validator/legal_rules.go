package validator

import "regexp"

var (
	usernameRegex    = regexp.MustCompile(`^[A-Za-z_0-9]{3,12}$`)
	passwordRegex    = regexp.MustCompile(`^[A-Za-z_0-9]+$`)
	singleClassRegex = regexp.MustCompile(`^(?:[a-z]+|[A-Z]+|_+|[0-9]+)$`)
	mobilePhoneRegex = regexp.MustCompile(`^1[3-9][0-9]{9}$`)
	emailRegex       = regexp.MustCompile(`^[A-Za-z0-9\x{4e00}-\x{9fa5}]+@[a-zA-Z0-9_-]+(\.[a-zA-Z0-9_-]+)+$`)
)

// Fixed messages reported by the legal* rules and validators.
const (
	UsernameMessage    = "must be 3 to 12 characters: letters, digits or underscore"
	PasswordMessage    = "must be 6 to 16 characters and mix at least two of uppercase, lowercase, underscore, digits"
	MobilePhoneMessage = "invalid mobile phone number format"
	EmailMessage       = "invalid email format"
)

// IsLegalUsername reports whether value is 3 to 12 ASCII letters, digits or underscores.
func IsLegalUsername(value string) bool {
	return usernameRegex.MatchString(value)
}

// IsLegalPassword reports whether value is 6 to 16 characters drawn from
// letters, digits and underscore, mixing at least two of the classes
// lowercase, uppercase, underscore and digits.
func IsLegalPassword(value string) bool {
	if len(value) < 6 || len(value) > 16 {
		return false
	}
	if !passwordRegex.MatchString(value) {
		return false
	}
	return !singleClassRegex.MatchString(value)
}

// IsLegalMobilePhone reports whether value is an 11-digit mainland China
// mobile number: 1, then 3-9, then nine digits.
func IsLegalMobilePhone(value string) bool {
	return mobilePhoneRegex.MatchString(value)
}

// IsLegalEmail reports whether value is an address whose local part holds
// Latin letters, digits or CJK unified ideographs, and whose domain is made of
// at least two dot-separated ASCII labels.
func IsLegalEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// LegalUsername validates IsLegalUsername. Empty values pass; combine with
// RequiredString when the field is mandatory.
func LegalUsername(field, value string) Rule {
	return legalRule(field, value, IsLegalUsername, UsernameMessage, "validation.legal_username")
}

// LegalPassword validates IsLegalPassword. Empty values pass.
func LegalPassword(field, value string) Rule {
	return legalRule(field, value, IsLegalPassword, PasswordMessage, "validation.legal_password")
}

// LegalMobilePhone validates IsLegalMobilePhone. Empty values pass.
func LegalMobilePhone(field, value string) Rule {
	return legalRule(field, value, IsLegalMobilePhone, MobilePhoneMessage, "validation.legal_mobile_phone")
}

// LegalEmail validates IsLegalEmail. Empty values pass.
func LegalEmail(field, value string) Rule {
	return legalRule(field, value, IsLegalEmail, EmailMessage, "validation.legal_email")
}

func legalRule(field, value string, check func(string) bool, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return value == "" || check(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
