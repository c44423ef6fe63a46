package model

// Speaker is a participant named in a turn's attribution line.
// Speakers are compared by identity: two mentions of the same person are distinct values.
type Speaker struct {
	Name                string `yaml:"name"`
	Affiliation         string `yaml:"affiliation"`
	PossibleAffiliation string `yaml:"possible_affiliation,omitempty"`
}

// NewSpeaker creates a speaker with an already canonicalized name
func NewSpeaker(name, possibleAffiliation string) *Speaker {
	return &Speaker{
		Name:                name,
		PossibleAffiliation: possibleAffiliation,
	}
}
