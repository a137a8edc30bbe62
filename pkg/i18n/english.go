package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred: "An error occurred! Please create an issue at https://github.com/jesseduffield/lazysdes/issues",

		InvalidKeyLengthError:   "Keys must be exactly 10 bits long, e.g. 1010000010",
		InvalidBlockLengthError: "Blocks must be exactly 8 bits long, e.g. 11010111",
		InvalidBitError:         "Keys and blocks are bit strings: only the characters 0 and 1 are allowed",

		StepColumnTitle:       "step",
		BitsColumnTitle:       "bits",
		FlipColumnTitle:       "flip",
		CiphertextColumnTitle: "ciphertext",
		DistanceColumnTitle:   "changed",
		KeyColumnTitle:        "key",
		BlockColumnTitle:      "block",
		ReasonColumnTitle:     "reason",

		ScheduleTitle:       "Key schedule",
		TraceEncryptTitle:   "Encryption trace",
		TraceDecryptTitle:   "Decryption trace",
		RoundTitle:          "Round",
		SwappedNote:         "halves swapped",
		SubkeysReversedNote: "subkeys applied in reverse order",
		GeneratedKeyLine:    "generated random key: {{key}}",

		AvalancheTitle:          "Avalanche analysis",
		AvalanchePlaintextTitle: "Plaintext flips",
		AvalancheKeyTitle:       "Key flips",
		BaseCiphertextLine:      "base ciphertext: {{bits}}",
		MeanDistanceLine:        "mean ciphertext bits changed: {{mean}}",

		VerifyTitle:        "Exhaustive verification",
		VerifyProgressLine: "checked {{done}} of {{total}} keys",
		VerifySuccessLine:  "verified {{pairs}} key/block pairs in {{elapsed}}: every block round-tripped and every key stayed bijective",
		VerifyFailureLine:  "found {{failures}} failing key/block pairs",
		VerifyVectorsLine:  "checked {{count}} reference vectors",
		MoreFailuresLine:   "and {{count}} more",

		ReferenceTitle:         "Simplified DES reference",
		ReferenceTablesTitle:   "Permutation and substitution tables",
		ReferenceScheduleTitle: "Worked key schedule",
		ReferenceTraceTitle:    "Worked encryption",
		ReferenceCommandsTitle: "Commands",
	}
}
