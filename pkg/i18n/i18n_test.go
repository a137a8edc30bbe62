package i18n

import (
	"io"
	"reflect"
	"testing"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// TestDetectLanguage is a function.
func TestDetectLanguage(t *testing.T) {
	type scenario struct {
		langDetector func() (string, error)
		expected     string
	}

	scenarios := []scenario{
		{
			func() (string, error) {
				return "", errors.New("an error occurred")
			},
			"C",
		},
		{
			func() (string, error) {
				return "en", nil
			},
			"en",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, detectLanguage(s.langDetector))
	}
}

// TestNewTranslationSetFromConfig is a function.
func TestNewTranslationSetFromConfig(t *testing.T) {
	log := newTestLog()

	set, err := NewTranslationSetFromConfig(log, "nl")
	assert.NoError(t, err)
	assert.EqualValues(t, "Sleutelschema", set.ScheduleTitle)

	set, err = NewTranslationSetFromConfig(log, "auto")
	assert.NoError(t, err)
	assert.NotEmpty(t, set.ScheduleTitle)

	set, err = NewTranslationSetFromConfig(log, "klingon")
	assert.Error(t, err)
	assert.EqualValues(t, "Key schedule", set.ScheduleTitle)
}

// TestUntranslatedStringsFallBackToEnglish is a function.
func TestUntranslatedStringsFallBackToEnglish(t *testing.T) {
	set := NewTranslationSet(newTestLog(), "nl")

	// dutch leaves the reference doc headings untranslated
	assert.EqualValues(t, "Bitflips in de sleutel", set.AvalancheKeyTitle)
	assert.EqualValues(t, englishSet().ReferenceTablesTitle, set.ReferenceTablesTitle)
}

// TestGetTranslationSets is a function.
func TestGetTranslationSets(t *testing.T) {
	sets := GetTranslationSets()
	assert.Contains(t, sets, "en")
	assert.Contains(t, sets, "nl")

	// the sets come back as authored, so gaps stay visible
	assert.NotEmpty(t, sets["nl"].ScheduleTitle)
	assert.Empty(t, sets["nl"].ReferenceTablesTitle)

	// english is the fallback so it must be complete
	v := reflect.ValueOf(sets["en"])
	for i := 0; i < v.NumField(); i++ {
		assert.NotEmpty(t, v.Field(i).String(), v.Type().Field(i).Name)
	}
}
