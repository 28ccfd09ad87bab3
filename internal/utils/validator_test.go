package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slugInput struct {
	Slug string `validate:"required,slug"`
}

type statusInput struct {
	Status string `validate:"required,product_status"`
}

func TestValidateSlug(t *testing.T) {
	for _, s := range []string{"red-shoe", "shoe", "shoe-2024"} {
		assert.NoError(t, ValidateStruct(slugInput{Slug: s}), s)
	}
	for _, s := range []string{"Red-Shoe", "red--shoe", "-red", "red shoe", "red_shoe"} {
		assert.Error(t, ValidateStruct(slugInput{Slug: s}), s)
	}
}

func TestValidateProductStatus(t *testing.T) {
	assert.NoError(t, ValidateStruct(statusInput{Status: "draft"}))
	assert.NoError(t, ValidateStruct(statusInput{Status: "published"}))
	assert.Error(t, ValidateStruct(statusInput{Status: "pending"}))
	assert.Error(t, ValidateStruct(statusInput{Status: "archived"}))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(statusInput{Status: "archived"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
	assert.Equal(t, "product_status", errs[0].Tag)
	assert.Equal(t, "Status must be one of: draft, published", errs[0].Message)
}
