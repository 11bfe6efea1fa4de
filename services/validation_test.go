package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name      string
		validate  func(string) ValidationResult
		input     string
		valid     bool
		sanitized string
		errSubstr string
	}{
		{"name ok", ValidateName, "  Jean-Luc Picard ", true, "Jean-Luc Picard", ""},
		{"name accented", ValidateName, "José Ñúñez", true, "José Ñúñez", ""},
		{"name apostrophe escaped", ValidateName, "O'Brien", true, "O&#x27;Brien", ""},
		{"name missing", ValidateName, "", false, "", "Name is required"},
		{"name blank", ValidateName, "   ", false, "", "Name cannot be empty"},
		{"name digits", ValidateName, "R2D2", false, "", "Name contains invalid characters"},
		{"name markup", ValidateName, "<b>Bob</b>", false, "", "Name contains invalid characters"},
		{"name too long", ValidateName, strings.Repeat("a", MaxNameLength+1), false, "", "Name must be less than 100 characters"},
		{"name at cap", ValidateName, strings.Repeat("a", MaxNameLength), true, strings.Repeat("a", MaxNameLength), ""},

		{"email ok", ValidateEmail, "john.doe+ads@example.co.in", true, "john.doe+ads@example.co.in", ""},
		{"email lowercased", ValidateEmail, "  John.Doe@Example.COM ", true, "john.doe@example.com", ""},
		{"email missing at", ValidateEmail, "john.example.com", false, "", "Invalid email format"},
		{"email missing tld", ValidateEmail, "john@example", false, "", "Invalid email format"},
		{"email too long", ValidateEmail, strings.Repeat("a", 250) + "@x.io", false, "", "Email must be less than 254 characters"},

		{"phone ok", ValidatePhone, "+91 (987) 654-3210", true, "+91 (987) 654-3210", ""},
		{"phone letters", ValidatePhone, "call me", false, "", "Phone contains invalid characters"},
		{"phone too long", ValidatePhone, strings.Repeat("1", MaxPhoneLength+1), false, "", "Phone must be less than 20 characters"},

		{"company ok", ValidateCompany, "Smith & Sons (India) Pvt. Ltd.", true, "Smith &amp; Sons (India) Pvt. Ltd.", ""},
		{"company script", ValidateCompany, "<script>", false, "", "Company contains invalid characters"},
		{"company too long", ValidateCompany, strings.Repeat("c", MaxCompanyLength+1), false, "", "Company must be less than 200 characters"},

		{"service ok", ValidateService, "ad-films", true, "ad-films", ""},
		{"service mixed case", ValidateService, "Video-Production", true, "Video-Production", ""},
		{"service spaces", ValidateService, "Ad Films", false, "", "Invalid service selection"},
		{"service underscore", ValidateService, "ad_films", false, "", "Invalid service selection"},
		{"service missing", ValidateService, "", false, "", "Service selection is required"},
		{"service blank", ValidateService, "  ", false, "", "Please select a service"},
		{"service too long", ValidateService, strings.Repeat("s", MaxServiceLength+1), false, "", "Invalid service selection"},

		{"message free text", ValidateMessage, "Budget: <$5k> & 2 weeks / \"ASAP\"", true, "Budget: &lt;$5k&gt; &amp; 2 weeks &#x2F; &quot;ASAP&quot;", ""},
		{"message empty", ValidateMessage, "", false, "", "Message is required"},
		{"message too long", ValidateMessage, strings.Repeat("m", MaxMessageLength+1), false, "", "Message must be less than 5000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.validate(tt.input)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Equal(t, tt.sanitized, res.Sanitized)
				assert.Empty(t, res.Error)
			} else {
				assert.Empty(t, res.Sanitized)
				assert.Contains(t, res.Error, tt.errSubstr)
			}
		})
	}
}

func TestValidateFieldUnknown(t *testing.T) {
	res := ValidateField(Field("website"), "x")
	assert.False(t, res.Valid)
	assert.True(t, IsContactField(FieldEmail))
	assert.False(t, IsContactField("website"))
}

func TestValidateContactForm(t *testing.T) {
	t.Run("AllValid", func(t *testing.T) {
		sanitized, errs := ValidateContactForm(validValues())
		assert.Empty(t, errs)
		assert.Len(t, sanitized, len(ContactFields))
		assert.Equal(t, "Asha Rao", sanitized[FieldName])
	})

	t.Run("MissingFieldIsRequired", func(t *testing.T) {
		values := validValues()
		delete(values, FieldPhone)
		_, errs := ValidateContactForm(values)
		assert.Equal(t, "Phone is required", errs[FieldPhone])
		assert.Len(t, errs, 1)
	})

	t.Run("CollectsEveryError", func(t *testing.T) {
		_, errs := ValidateContactForm(map[Field]string{})
		assert.Len(t, errs, len(ContactFields))
	})
}

func validValues() map[Field]string {
	return map[Field]string{
		FieldName:    "Asha Rao",
		FieldEmail:   "asha@example.com",
		FieldPhone:   "+91 98765 43210",
		FieldCompany: "Rao Foods",
		FieldService: "ad-films",
		FieldMessage: "We need a 30 second ad for our new product line.",
	}
}
