package model

import (
	"sort"
	"sync"
)

// SpeakerRegistry accumulates finalized speakers over one run.
// It is diagnostic only; interventions keep their own speaker values.
type SpeakerRegistry struct {
	mu       sync.Mutex
	speakers []*Speaker
}

// NewSpeakerRegistry creates an empty registry
func NewSpeakerRegistry() *SpeakerRegistry {
	return &SpeakerRegistry{}
}

// Add records speakers (thread-safe)
func (r *SpeakerRegistry) Add(speakers ...*Speaker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.speakers = append(r.speakers, speakers...)
}

// Len returns the number of recorded speaker mentions
func (r *SpeakerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.speakers)
}

// SpeakerCount is one row of the speaker report
type SpeakerCount struct {
	Name        string `yaml:"name"`
	Affiliation string `yaml:"affiliation"`
	Mentions    int    `yaml:"mentions"`
}

// Summary groups recorded mentions by name and affiliation, sorted by name
func (r *SpeakerRegistry) Summary() []SpeakerCount {
	r.mu.Lock()
	defer r.mu.Unlock()

	type key struct{ name, affiliation string }
	counts := make(map[key]int)
	for _, s := range r.speakers {
		counts[key{s.Name, s.Affiliation}]++
	}

	rows := make([]SpeakerCount, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, SpeakerCount{Name: k.name, Affiliation: k.affiliation, Mentions: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].Affiliation < rows[j].Affiliation
	})
	return rows
}
