package validation_test

import (
	"testing"

	"go-marketplace-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidBudget(t *testing.T) {
	assert.True(t, validation.ValidBudget(50, 200))
	assert.True(t, validation.ValidBudget(100, 100))
	assert.False(t, validation.ValidBudget(200, 50))
	assert.False(t, validation.ValidBudget(0, 50))
	assert.False(t, validation.ValidBudget(50, -1))
}

func TestIsJobCategory(t *testing.T) {
	assert.True(t, validation.IsJobCategory("plumbing"))
	assert.True(t, validation.IsJobCategory("other"))
	assert.False(t, validation.IsJobCategory("Plumbing"))
	assert.False(t, validation.IsJobCategory("dog-walking"))
	assert.False(t, validation.IsJobCategory(""))
}

func TestRegisteredValidators(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type form struct {
		Name     string `validate:"valid_name"`
		Phone    string `validate:"valid_phone"`
		Category string `validate:"job_category"`
	}

	assert.NoError(t, v.Struct(form{Name: "Jane O'Brien-Doe", Phone: "+15550100123", Category: "electrical"}))
	assert.Error(t, v.Struct(form{Name: "Jane<script>", Phone: "+15550100123", Category: "electrical"}))
	assert.Error(t, v.Struct(form{Name: "Jane", Phone: "not-a-phone", Category: "electrical"}))
	assert.Error(t, v.Struct(form{Name: "Jane", Phone: "+15550100123", Category: "nonsense"}))
}
