package checkout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarohi-store/storefront/internal/models"
)

func TestValidateShippingMinimalValidInput(t *testing.T) {
	info, errs := ValidateShipping(models.ShippingInfo{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Address: "12 MG Road",
		City:    "Pune",
		Country: "India",
	})

	require.Nil(t, errs)
	assert.Equal(t, "asha@example.com", info.Email)
	assert.Empty(t, info.Phone, "phone stays optional")
}

func TestValidateShippingReportsExactlyTheFailingFields(t *testing.T) {
	_, errs := ValidateShipping(models.ShippingInfo{
		Name:    "",
		Email:   "bad",
		Phone:   "",
		Address: "x",
		City:    "y",
		Country: "z",
	})

	require.NotNil(t, errs)
	assert.Len(t, errs, 2)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Please enter a valid email", errs["email"])
}

func TestValidateShippingLengthLimits(t *testing.T) {
	long := func(n int) string { return strings.Repeat("a", n) }

	_, errs := ValidateShipping(models.ShippingInfo{
		Name:    long(101),
		Email:   "a@b.co",
		Phone:   long(21),
		Address: long(201),
		City:    long(101),
		Country: long(101),
	})

	require.NotNil(t, errs)
	assert.Equal(t, "Name must be less than 100 characters", errs["name"])
	assert.Equal(t, "Phone must be less than 20 characters", errs["phone"])
	assert.Equal(t, "Address must be less than 200 characters", errs["address"])
	assert.Equal(t, "City must be less than 100 characters", errs["city"])
	assert.Equal(t, "Country must be less than 100 characters", errs["country"])
}

func TestValidateShippingBoundaryLengthsPass(t *testing.T) {
	long := func(n int) string { return strings.Repeat("a", n) }

	_, errs := ValidateShipping(models.ShippingInfo{
		Name:    long(100),
		Email:   "a@b.co",
		Phone:   long(20),
		Address: long(200),
		City:    long(100),
		Country: long(100),
	})
	assert.Nil(t, errs)
}

func TestValidateShippingTrimsEmail(t *testing.T) {
	info, errs := ValidateShipping(models.ShippingInfo{
		Name:    "Asha",
		Email:   "  asha@example.com  ",
		Address: "12 MG Road",
		City:    "Pune",
		Country: "India",
	})
	require.Nil(t, errs)
	assert.Equal(t, "asha@example.com", info.Email)
}

func TestValidateShippingRejectsMissingEmail(t *testing.T) {
	_, errs := ValidateShipping(models.ShippingInfo{
		Name:    "Asha",
		Email:   "",
		Address: "12 MG Road",
		City:    "Pune",
		Country: "India",
	})
	require.NotNil(t, errs)
	assert.Equal(t, "Please enter a valid email", errs["email"])
}
