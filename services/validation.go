package services

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field identifies a contact form input. The value is the form field name.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldCompany Field = "company"
	FieldService Field = "service"
	FieldMessage Field = "message"
)

// ContactFields lists the form fields in display order
var ContactFields = []Field{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldService, FieldMessage}

// Length caps, counted in characters after trimming
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxPhoneLength   = 20
	MaxCompanyLength = 200
	MaxMessageLength = 5000
	MaxServiceLength = 100
)

var (
	namePattern    = regexp.MustCompile(`^[\p{L}\s'.-]+$`)
	emailPattern   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern   = regexp.MustCompile(`^[0-9+\-\s().]+$`)
	companyPattern = regexp.MustCompile(`^[\p{L}\p{N}\s&.,'()\-]+$`)
	servicePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// ValidationResult is the outcome of validating one raw field value.
// Sanitized is only set when Valid is true.
type ValidationResult struct {
	Valid     bool
	Sanitized string
	Error     string
}

// fieldRule holds a field's limits and messages. Empty message overrides
// fall back to the label-based defaults.
type fieldRule struct {
	label     string
	maxLength int
	pattern   *regexp.Regexp // nil means free text
	lowercase bool

	requiredMsg string
	emptyMsg    string
	tooLongMsg  string
	invalidMsg  string
}

func (r fieldRule) required() string {
	if r.requiredMsg != "" {
		return r.requiredMsg
	}
	return r.label + " is required"
}

func (r fieldRule) empty() string {
	if r.emptyMsg != "" {
		return r.emptyMsg
	}
	return r.label + " cannot be empty"
}

func (r fieldRule) tooLong() string {
	if r.tooLongMsg != "" {
		return r.tooLongMsg
	}
	return fmt.Sprintf("%s must be less than %d characters", r.label, r.maxLength)
}

func (r fieldRule) invalid() string {
	if r.invalidMsg != "" {
		return r.invalidMsg
	}
	return r.label + " contains invalid characters"
}

var fieldRules = map[Field]fieldRule{
	FieldName: {
		label:     "Name",
		maxLength: MaxNameLength,
		pattern:   namePattern,
	},
	FieldEmail: {
		label:      "Email",
		maxLength:  MaxEmailLength,
		pattern:    emailPattern,
		lowercase:  true,
		invalidMsg: "Invalid email format",
	},
	FieldPhone: {
		label:     "Phone",
		maxLength: MaxPhoneLength,
		pattern:   phonePattern,
	},
	FieldCompany: {
		label:     "Company",
		maxLength: MaxCompanyLength,
		pattern:   companyPattern,
	},
	FieldService: {
		label:       "Service",
		maxLength:   MaxServiceLength,
		pattern:     servicePattern,
		requiredMsg: "Service selection is required",
		emptyMsg:    "Please select a service",
		tooLongMsg:  "Invalid service selection",
		invalidMsg:  "Invalid service selection",
	},
	FieldMessage: {
		label:     "Message",
		maxLength: MaxMessageLength,
	},
}

func validateWith(raw string, rule fieldRule) ValidationResult {
	if raw == "" {
		return ValidationResult{Error: rule.required()}
	}
	trimmed := strings.TrimSpace(raw)
	if rule.lowercase {
		trimmed = strings.ToLower(trimmed)
	}
	if trimmed == "" {
		return ValidationResult{Error: rule.empty()}
	}
	if utf8.RuneCountInString(trimmed) > rule.maxLength {
		return ValidationResult{Error: rule.tooLong()}
	}
	if rule.pattern != nil && !rule.pattern.MatchString(trimmed) {
		return ValidationResult{Error: rule.invalid()}
	}
	return ValidationResult{Valid: true, Sanitized: Sanitize(trimmed)}
}

func ValidateName(raw string) ValidationResult    { return validateWith(raw, fieldRules[FieldName]) }
func ValidateEmail(raw string) ValidationResult   { return validateWith(raw, fieldRules[FieldEmail]) }
func ValidatePhone(raw string) ValidationResult   { return validateWith(raw, fieldRules[FieldPhone]) }
func ValidateCompany(raw string) ValidationResult { return validateWith(raw, fieldRules[FieldCompany]) }
func ValidateService(raw string) ValidationResult { return validateWith(raw, fieldRules[FieldService]) }
func ValidateMessage(raw string) ValidationResult { return validateWith(raw, fieldRules[FieldMessage]) }

// ValidateField dispatches to the validator of a named field
func ValidateField(field Field, raw string) ValidationResult {
	rule, ok := fieldRules[field]
	if !ok {
		return ValidationResult{Error: "Unknown field"}
	}
	return validateWith(raw, rule)
}

// IsContactField reports whether field is one of the contact form fields
func IsContactField(field Field) bool {
	_, ok := fieldRules[field]
	return ok
}

// ValidateContactForm validates every contact field. A field missing from
// values fails as required. errs is empty when the whole form is valid.
func ValidateContactForm(values map[Field]string) (sanitized map[Field]string, errs map[Field]string) {
	sanitized = make(map[Field]string, len(ContactFields))
	errs = make(map[Field]string)
	for _, field := range ContactFields {
		raw, present := values[field]
		if !present {
			errs[field] = fieldRules[field].required()
			continue
		}
		res := ValidateField(field, raw)
		if !res.Valid {
			errs[field] = res.Error
			continue
		}
		sanitized[field] = res.Sanitized
	}
	return sanitized, errs
}
