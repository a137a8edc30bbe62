package i18n

func dutchSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred: "Er is een fout opgetreden! Maak een issue aan op https://github.com/jesseduffield/lazysdes/issues",

		InvalidKeyLengthError:   "Sleutels moeten precies 10 bits lang zijn, bijvoorbeeld 1010000010",
		InvalidBlockLengthError: "Blokken moeten precies 8 bits lang zijn, bijvoorbeeld 11010111",
		InvalidBitError:         "Sleutels en blokken zijn bitreeksen: alleen de tekens 0 en 1 zijn toegestaan",

		StepColumnTitle:       "stap",
		BitsColumnTitle:       "bits",
		FlipColumnTitle:       "flip",
		CiphertextColumnTitle: "cijfertekst",
		DistanceColumnTitle:   "gewijzigd",
		KeyColumnTitle:        "sleutel",
		BlockColumnTitle:      "blok",
		ReasonColumnTitle:     "reden",

		ScheduleTitle:       "Sleutelschema",
		TraceEncryptTitle:   "Versleuteling stap voor stap",
		TraceDecryptTitle:   "Ontsleuteling stap voor stap",
		RoundTitle:          "Ronde",
		SwappedNote:         "helften gewisseld",
		SubkeysReversedNote: "subsleutels in omgekeerde volgorde toegepast",
		GeneratedKeyLine:    "willekeurige sleutel: {{key}}",

		AvalancheTitle:          "Lawine-analyse",
		AvalanchePlaintextTitle: "Bitflips in de klaartekst",
		AvalancheKeyTitle:       "Bitflips in de sleutel",
		BaseCiphertextLine:      "basiscijfertekst: {{bits}}",
		MeanDistanceLine:        "gemiddeld {{mean}} cijfertekstbits gewijzigd",

		VerifyTitle:        "Volledige verificatie",
		VerifyProgressLine: "{{done}} van {{total}} sleutels gecontroleerd",
		VerifySuccessLine:  "{{pairs}} sleutel/blok-paren geverifieerd in {{elapsed}}: elk blok kwam terug en elke sleutel bleef bijectief",
		VerifyFailureLine:  "{{failures}} falende sleutel/blok-paren gevonden",
		VerifyVectorsLine:  "{{count}} referentievectoren gecontroleerd",
		MoreFailuresLine:   "en nog {{count}}",
	}
}
