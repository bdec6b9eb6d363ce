package domain

// AllBiasTypes is the full set of dimensions the analyzer can evaluate.
// The gateway treats these as an opaque pass-through list; requests that
// omit bias_types are forwarded with the complete set.
var AllBiasTypes = []string{
	"gender",
	"race",
	"age",
	"disability",
	"culture",
	"political",
	"religious",
	"lgbtq",
	"socioeconomic",
	"truth_seeking",
	"ideological_neutrality",
	"intersectional",
	"language_tone",
}
