package app

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/days-together/models"
)

func TestFor(t *testing.T) {
	assert.Equal(t, "Days Together", For(models.English).HomeTitle)
	assert.Equal(t, "Días Juntos", For(models.Spanish).HomeTitle)
	assert.Equal(t, For(models.English), For(models.Language("fr")))
}

// every label must be translated in both languages
func TestLabels_NoEmptyValues(t *testing.T) {
	for _, lang := range []models.Language{models.English, models.Spanish} {
		labels := reflect.ValueOf(For(lang))
		for i := 0; i < labels.NumField(); i++ {
			field := labels.Type().Field(i)
			value := labels.Field(i)

			switch value.Kind() {
			case reflect.String:
				assert.NotEmpty(t, value.String(), "%s.%s", lang, field.Name)
			case reflect.Array, reflect.Slice:
				assert.NotZero(t, value.Len(), "%s.%s", lang, field.Name)
				for j := 0; j < value.Len(); j++ {
					assert.False(t, value.Index(j).IsZero(), "%s.%s[%d]", lang, field.Name, j)
				}
			}
		}
	}
}

func TestLabels_SameFeatureCount(t *testing.T) {
	assert.Len(t, For(models.Spanish).Features, len(For(models.English).Features))
}
