// Package validator provides form-field validation built from small Rule
// values and adapters for form libraries that expect a (rule, value)
// validator function.
//
// # Predicates
//
// IsLegalUsername, IsLegalPassword, IsLegalMobilePhone and IsLegalEmail are
// pure regular-expression checks that only return a bool:
//
//   - username: 3 to 12 ASCII letters, digits or underscores
//   - password: 6 to 16 letters, digits or underscores, not all of one class
//     (all lowercase, all uppercase, all underscores or all digits)
//   - mobile phone: 11 digits, a leading 1 followed by 3-9
//   - email: a local part of Latin letters, digits or CJK ideographs and an
//     ASCII domain with at least one dot
//
// # Rules
//
// LegalUsername, LegalPassword, LegalMobilePhone and LegalEmail wrap the
// predicates in a Rule. They accept the empty string, so pair them with
// RequiredString for mandatory fields:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", form.Email),
//	    validator.LegalEmail("email", form.Email),
//	    validator.LegalMobilePhone("phone", form.Phone),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    // errs.Get("email"), errs.Fields(), ...
//	}
//
// # Adapters
//
// UsernameValidator, PasswordValidator, MobilePhoneValidator and
// EmailValidator are FieldValidator functions. They return nil for acceptable
// values and a ValidationError with a fixed message otherwise. Lookup and
// Validate resolve them by kind name.
//
// ValidationError and ValidationErrors both match ErrValidationFailed with
// errors.Is. All values in this package are stateless and goroutine-safe.
package validator
