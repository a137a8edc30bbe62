package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred string

	InvalidKeyLengthError   string
	InvalidBlockLengthError string
	InvalidBitError         string

	StepColumnTitle       string
	BitsColumnTitle       string
	FlipColumnTitle       string
	CiphertextColumnTitle string
	DistanceColumnTitle   string
	KeyColumnTitle        string
	BlockColumnTitle      string
	ReasonColumnTitle     string

	ScheduleTitle       string
	TraceEncryptTitle   string
	TraceDecryptTitle   string
	RoundTitle          string
	SwappedNote         string
	SubkeysReversedNote string
	GeneratedKeyLine    string

	AvalancheTitle          string
	AvalanchePlaintextTitle string
	AvalancheKeyTitle       string
	BaseCiphertextLine      string
	MeanDistanceLine        string

	VerifyTitle        string
	VerifyProgressLine string
	VerifySuccessLine  string
	VerifyFailureLine  string
	VerifyVectorsLine  string
	MoreFailuresLine   string

	ReferenceTitle         string
	ReferenceTablesTitle   string
	ReferenceScheduleTitle string
	ReferenceTraceTitle    string
	ReferenceCommandsTitle string
}
