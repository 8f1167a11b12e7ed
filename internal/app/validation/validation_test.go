package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productSchema = Schema{
	"id":            {Type: String},
	"name":          {Type: String, Required: true},
	"description":   {Type: String, Required: true},
	"purchasePrice": {Type: Number, Required: true, Positive: true},
	"stock":         {Type: Number, Required: true, Integer: true, NonNegative: true},
}

func TestValidateNormalizesAndStripsUnknownFields(t *testing.T) {
	payload := map[string]any{
		"name":          "Widget",
		"description":   "A widget",
		"purchasePrice": 10.5,
		"stock":         float64(3),
		"rogue":         "ignored",
	}

	normalized, violations := productSchema.Validate(payload)
	require.Empty(t, violations)
	assert.NotContains(t, normalized, "rogue")
	assert.Equal(t, "Widget", StringValue(normalized, "name"))
	assert.Equal(t, 10.5, NumberValue(normalized, "purchasePrice"))
	assert.Equal(t, 3, IntValue(normalized, "stock"))
}

func TestValidateCollectsAllViolationsInOnePass(t *testing.T) {
	payload := map[string]any{
		"description":   42,
		"purchasePrice": "free",
		"stock":         -1,
	}

	_, violations := productSchema.Validate(payload)
	require.Len(t, violations, 4)
	assert.Contains(t, violations, "name is required")
	assert.Contains(t, violations, "description must be a string")
	assert.Contains(t, violations, "purchasePrice must be a number")
	assert.Contains(t, violations, "stock must be greater than or equal to 0")
}

func TestValidateNumericConstraints(t *testing.T) {
	_, violations := productSchema.Validate(map[string]any{
		"name":          "Widget",
		"description":   "A widget",
		"purchasePrice": float64(0),
		"stock":         2.5,
	})
	require.Len(t, violations, 2)
	assert.Contains(t, violations, "purchasePrice must be greater than 0")
	assert.Contains(t, violations, "stock must be an integer")
}

func TestValidateEmailShape(t *testing.T) {
	schema := Schema{
		"email": {Type: String, Required: true, Email: true},
	}

	_, violations := schema.Validate(map[string]any{"email": "not-an-address"})
	require.Len(t, violations, 1)
	assert.Equal(t, "email is invalid", violations[0])

	normalized, violations := schema.Validate(map[string]any{"email": "a@b.com"})
	require.Empty(t, violations)
	assert.Equal(t, "a@b.com", StringValue(normalized, "email"))
}

func TestValidateBlankRequiredString(t *testing.T) {
	_, violations := productSchema.Validate(map[string]any{
		"name":          "   ",
		"description":   "d",
		"purchasePrice": float64(1),
		"stock":         float64(0),
	})
	require.Len(t, violations, 1)
	assert.Equal(t, "name is required", violations[0])
}
