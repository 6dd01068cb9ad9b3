package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Ingredients(t *testing.T) {
	v := NewSchemaValidator()

	tests := []struct {
		name     string
		data     string
		wantErr  bool
		errorMsg string
	}{
		{"valid", `[{"name": "flour", "measurement_unit": "g"}, {"name": "milk", "measurement_unit": "ml"}]`, false, ""},
		{"empty list", `[]`, false, ""},
		{"missing unit", `[{"name": "flour"}]`, true, "/0"},
		{"empty name", `[{"name": "", "measurement_unit": "g"}]`, true, "minLength"},
		{"unknown field", `[{"name": "salt", "measurement_unit": "g", "kcal": 0}]`, true, "additionalProperties"},
		{"not a list", `{"name": "flour", "measurement_unit": "g"}`, true, "type"},
		{"invalid JSON", `[{"name": }]`, true, "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(FixtureIngredients, []byte(tt.data))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_Tags(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.Validate(FixtureTags, []byte(`[{"name": "Breakfast", "color": "#E26C2D", "slug": "breakfast"}]`)))

	err := v.Validate(FixtureTags, []byte(`[{"name": "Lunch", "color": "orange", "slug": "lunch"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/0/color")

	err = v.Validate(FixtureTags, []byte(`[{"name": "Late dinner", "color": "#000000", "slug": "late dinner"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern")
}

func TestSchemaValidator_Users(t *testing.T) {
	v := NewSchemaValidator()

	assert.NoError(t, v.Validate(FixtureUsers, []byte(`[{"email": "chef@example.com", "username": "chef", "first_name": "Ann", "last_name": "Lee"}]`)))
	assert.Error(t, v.Validate(FixtureUsers, []byte(`[{"email": "chef@example.com", "username": "bad name"}]`)))
}

func TestSchemaValidator_UnknownFixture(t *testing.T) {
	err := NewSchemaValidator().Validate(Fixture("recipes"), []byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture kind")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)

	require.NoError(t, v.Validate(FixtureTags, []byte(`[]`)))
	require.NoError(t, v.Validate(FixtureTags, []byte(`[]`)))
	assert.Len(t, v.schemas, 1)
}
