package extract

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
	"github.com/sirupsen/logrus"
)

// turnMarker identifies a speaker-attribution line
const turnMarker = "SPEAKER"

// Lines starting with these close the current turn
var sectionResetPrefixes = []string{
	"<CHAPTER", "VOTE", "The sitting was ", "Votes", "Statement by ",
}

// Applause announcements are dropped without closing the turn
var noisePrefixes = []string{
	"Applause", "Loud applause", "Loud and sustained applause", "Loud Applause", "Sustained applause",
}

// LineKind is the role a transcript line plays in turn segmentation
type LineKind int

const (
	LineContinuation LineKind = iota // Text of the open turn, if any
	LineSectionReset                 // Closes the open turn
	LineNoise                        // Discarded
	LineTurnOpening                  // Starts a new turn
)

func (k LineKind) String() string {
	switch k {
	case LineSectionReset:
		return "section-reset"
	case LineNoise:
		return "noise"
	case LineTurnOpening:
		return "turn-opening"
	default:
		return "continuation"
	}
}

// ClassifyLine decides the role of a raw line. Reset markers take priority over
// noise, and noise over turn markers.
func ClassifyLine(line string) LineKind {
	for _, prefix := range sectionResetPrefixes {
		if strings.HasPrefix(line, prefix) {
			return LineSectionReset
		}
	}
	for _, prefix := range noisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return LineNoise
		}
	}
	if strings.Contains(line, turnMarker) {
		return LineTurnOpening
	}
	return LineContinuation
}

// Segmenter turns a transcript into interventions in one sequential pass.
// It is not safe for concurrent use; use one segmenter per file.
type Segmenter struct {
	names  *NameParser
	logger *logrus.Entry

	interventions []*model.Intervention
	current       *model.Intervention // nil outside a turn
}

// NewSegmenter creates a segmenter for one transcript file
func NewSegmenter(logger *logrus.Entry) *Segmenter {
	return &Segmenter{
		names:  NewNameParser(logger),
		logger: logger,
	}
}

// Feed processes one line, given without its terminator
func (s *Segmenter) Feed(line string) {
	switch ClassifyLine(line) {
	case LineSectionReset:
		s.current = nil
	case LineNoise:
	case LineTurnOpening:
		s.current = s.openTurn(line)
		s.interventions = append(s.interventions, s.current)
	default:
		if s.current != nil {
			s.current.AppendText(CleanLine(line + "\n"))
		}
	}
}

// Interventions returns the interventions opened so far, in source order
func (s *Segmenter) Interventions() []*model.Intervention {
	return s.interventions
}

// Segment feeds every line of r and returns the resulting interventions
func (s *Segmenter) Segment(r io.Reader) ([]*model.Intervention, error) {
	scanner := bufio.NewScanner(r)

	// Some transcripts carry whole speeches on one line
	const maxLineSize = 4 * 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		s.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return s.interventions, fmt.Errorf("read transcript: %w", err)
	}
	return s.interventions, nil
}

// openTurn builds an intervention from a turn-opening line. It never fails:
// missing attributes are logged and left empty.
func (s *Segmenter) openTurn(line string) *model.Intervention {
	trimmed := strings.TrimSpace(line)
	attrs := ParseTurnAttributes(trimmed)

	i := &model.Intervention{SpeechID: attrs.SpeechID}
	log := s.logger.WithField("line", trimmed)
	if i.SpeechID == "" {
		log.WithError(model.ErrMissingSpeechID).Warn("Turn without speech id")
	} else {
		log = s.logger.WithField("speech_id", i.SpeechID)
	}

	if attrs.HasName {
		i.Speakers = s.names.Parse(attrs.Name)
	}
	if len(i.Speakers) == 0 {
		log.WithError(model.ErrMissingName).WithField("name", attrs.Name).Warn("Turn without speaker names")
	}

	s.resolveAffiliations(i, attrs, log)
	s.resolveLanguage(i, attrs, log)

	return i
}

// resolveAffiliations applies a valid AFFILIATION attribute to every speaker,
// otherwise promotes each speaker's tentative affiliation.
func (s *Segmenter) resolveAffiliations(i *model.Intervention, attrs TurnAttributes, log *logrus.Entry) {
	if attrs.HasAffiliation {
		raw := attrs.Affiliation
		if code, rest, ok := PossibleLanguage(raw); ok {
			i.PossibleLanguage = code
			raw = rest
		}

		if affiliation, ok := NormalizeAffiliation(raw); ok {
			for _, sp := range i.Speakers {
				if sp.PossibleAffiliation != "" && sp.PossibleAffiliation != affiliation {
					log.WithFields(logrus.Fields{
						"affiliation": affiliation,
						"possible":    sp.PossibleAffiliation,
						"speaker":     sp.Name,
					}).Info("Affiliation mismatch")
				}
				sp.Affiliation = affiliation
			}
			return
		}
		if raw != "" {
			log.WithError(model.ErrInvalidAffiliation).WithField("raw", attrs.Affiliation).Debug("Affiliation attribute rejected")
		}
	}

	for _, sp := range i.Speakers {
		if sp.PossibleAffiliation != "" {
			sp.Affiliation = sp.PossibleAffiliation
			continue
		}
		log.WithError(model.ErrUnresolvedAffiliation).WithField("speaker", sp.Name).Debug("No affiliation for speaker")
	}
}

// resolveLanguage prefers the corrected LANGUAGE attribute, then the tentative
// language from the affiliation parenthetical. Anything else is left for the fallback.
func (s *Segmenter) resolveLanguage(i *model.Intervention, attrs TurnAttributes, log *logrus.Entry) {
	if attrs.HasLanguage {
		if code, ok := ResolveLanguage(attrs.Language); ok {
			i.Language = code
			return
		}
		log.WithField("language", attrs.Language).Debug("Invalid language attribute")
	}
	if i.PossibleLanguage != "" {
		i.Language = i.PossibleLanguage
		return
	}
	log.WithError(model.ErrUnresolvedLanguage).Debug("Language not resolved from turn")
}
