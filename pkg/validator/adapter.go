package validator

import (
	"fmt"
	"slices"
)

// FieldValidator follows the (rule, value) shape used by form libraries.
// It returns nil when the value is acceptable and a ValidationError otherwise.
// The rule argument belongs to the calling framework and is never inspected.
type FieldValidator func(rule any, value string) error

var (
	UsernameValidator    FieldValidator = adapt(LegalUsername)
	PasswordValidator    FieldValidator = adapt(LegalPassword)
	MobilePhoneValidator FieldValidator = adapt(LegalMobilePhone)
	EmailValidator       FieldValidator = adapt(LegalEmail)
)

var registry = map[string]FieldValidator{
	"username":     UsernameValidator,
	"password":     PasswordValidator,
	"phone":        MobilePhoneValidator,
	"mobile_phone": MobilePhoneValidator,
	"email":        EmailValidator,
}

func adapt(rule func(field, value string) Rule) FieldValidator {
	return func(_ any, value string) error {
		r := rule("", value)
		if r.Check() {
			return nil
		}
		return r.Error
	}
}

// Lookup returns the validator registered under kind.
func Lookup(kind string) (FieldValidator, bool) {
	v, ok := registry[kind]
	return v, ok
}

// Kinds lists the registered validator names in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Validate runs the validator registered under kind against value.
func Validate(kind, value string) error {
	v, ok := Lookup(kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return v(nil, value)
}
