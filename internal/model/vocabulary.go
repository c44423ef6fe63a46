package model

// Unknown is the sentinel for a language or affiliation that could not be resolved
const Unknown = "UNKNOWN"

// Languages lists the official EU language codes.
// The order is also the fallback scan order across sibling corpora.
var Languages = []string{
	"BG", "CS", "DA", "DE", "EL", "EN", "ES", "ET", "FI", "FR",
	"GA", "HU", "IT", "LT", "LV", "MT", "NL", "PL", "PT", "RO",
	"SK", "SL", "SV",
}

// Affiliations lists the European Parliament political group codes
var Affiliations = []string{
	"ALDE", "ERA", "EPP-ED", "G/EFA", "V", "UEN", "EDD",
	"ELDR", "PES", "EUL/NGL", "I-EN", "IND/DEM", "NI",
	"TGI", "UFE", "S&D", "ECR", "EFD", "ITS",
}

var (
	languageSet    = toSet(Languages)
	affiliationSet = toSet(Affiliations)
)

// IsValidLanguage reports whether code is one of the official language codes
func IsValidLanguage(code string) bool {
	return languageSet[code]
}

// IsValidAffiliation reports whether code is a known political group code
func IsValidAffiliation(code string) bool {
	return affiliationSet[code]
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
