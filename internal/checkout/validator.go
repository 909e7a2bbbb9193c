package checkout

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aarohi-store/storefront/internal/models"
)

// FieldErrors maps a form field name to its first failing rule's message.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateShipping turns raw form input into validated shipping info or a
// field-keyed error map. Fields are checked independently and each reports
// at most one message. A nil error map means the info is valid; callers
// must not submit otherwise.
func ValidateShipping(form models.ShippingInfo) (models.ShippingInfo, FieldErrors) {
	errs := FieldErrors{}

	switch {
	case form.Name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(form.Name) > 100:
		errs["name"] = "Name must be less than 100 characters"
	}

	email := strings.TrimSpace(form.Email)
	if !emailPattern.MatchString(email) {
		errs["email"] = "Please enter a valid email"
	}

	// Phone is optional.
	if utf8.RuneCountInString(form.Phone) > 20 {
		errs["phone"] = "Phone must be less than 20 characters"
	}

	switch {
	case form.Address == "":
		errs["address"] = "Address is required"
	case utf8.RuneCountInString(form.Address) > 200:
		errs["address"] = "Address must be less than 200 characters"
	}

	switch {
	case form.City == "":
		errs["city"] = "City is required"
	case utf8.RuneCountInString(form.City) > 100:
		errs["city"] = "City must be less than 100 characters"
	}

	switch {
	case form.Country == "":
		errs["country"] = "Country is required"
	case utf8.RuneCountInString(form.Country) > 100:
		errs["country"] = "Country must be less than 100 characters"
	}

	if len(errs) > 0 {
		return models.ShippingInfo{}, errs
	}

	form.Email = email
	return form, nil
}
