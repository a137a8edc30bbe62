package i18n

import (
	"github.com/cloudfoundry/jibber_jabber"
	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ISO 639-1 supported language codes.
const (
	// Dutch
	NL = "nl"
	// English
	EN = "en"
)

func NewTranslationSetFromConfig(log *logrus.Entry, configLanguage string) (*TranslationSet, error) {
	if configLanguage == "auto" {
		language := detectLanguage(jibber_jabber.DetectLanguage)

		return NewTranslationSet(log, language), nil
	}

	if lo.Contains(getSupportedLanguages(), configLanguage) {
		return NewTranslationSet(log, configLanguage), nil
	}

	return NewTranslationSet(log, EN), errors.New("Language not found: " + configLanguage)
}

func NewTranslationSet(log *logrus.Entry, language string) *TranslationSet {
	log.Info("language: " + language)

	set := mergedSet(language)

	return &set
}

// GetTranslationSets gets all the translation sets as authored, keyed by
// language code. Untranslated strings are left empty here rather than
// falling back to english, so tooling can spot them.
func GetTranslationSets() map[string]TranslationSet {
	sets := map[string]TranslationSet{}
	for _, language := range getSupportedLanguages() {
		sets[language] = getTranslationSet(language)
	}

	return sets
}

// mergedSet overlays the given language onto the english set, so that
// anything left untranslated falls back to english.
func mergedSet(language string) TranslationSet {
	baseSet := englishSet()
	otherSet := getTranslationSet(language)

	_ = mergo.Merge(&baseSet, otherSet, mergo.WithOverride)

	return baseSet
}

// getTranslationSet returns the translation set that matches the given language.
//
// It returns an english translation set if not found.
func getTranslationSet(languageCode string) TranslationSet {
	switch languageCode {
	case NL:
		return dutchSet()
	case EN:
		return englishSet()
	}

	return englishSet()
}

// getSupportedLanguages returns all the supported languages.
func getSupportedLanguages() []string {
	return []string{
		NL,
		EN,
	}
}

// detectLanguage extracts user language from environment
func detectLanguage(langDetector func() (string, error)) string {
	if userLang, err := langDetector(); err == nil {
		return userLang
	}

	return "C"
}
