// Package fallback resolves a turn's language from the sibling language versions
// of the same transcript when its own file carries no usable language signal.
package fallback

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/ppiankov/ecpc/internal/cache"
	"github.com/ppiankov/ecpc/internal/model"
	"github.com/sirupsen/logrus"
)

// LanguageLookup finds the language of a speech in another corpus
type LanguageLookup interface {
	Lookup(corpusLanguage, filename, speechID string) (string, bool)
}

// Index maps speech ids to the first valid language declared for them in one file.
// A nil Index records that the file does not exist.
type Index map[string]string

var turnLanguage = regexp.MustCompile(`SPEAKER\s+ID\s*=\s*"*\s*(\d+)"*\s.*\bLANGUAGE\s*=\s*"\s*([A-Za-z]{2})\s*"`)

// SiblingLookup scans <lang>/<filename> in every other corpus, in the fixed
// language order, and adopts the first valid language found for the speech id.
type SiblingLookup struct {
	fsys   fs.FS
	cache  cache.Cache[Index]
	ttl    time.Duration
	logger *logrus.Entry
}

// NewSiblingLookup creates a lookup over fsys, whose top-level directories are the
// lower-case language corpora. Indexes are cached for ttl; a nil cache disables caching.
func NewSiblingLookup(fsys fs.FS, c cache.Cache[Index], ttl time.Duration, logger *logrus.Entry) *SiblingLookup {
	return &SiblingLookup{
		fsys:   fsys,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup returns the language of speechID found in a sibling corpus.
// Missing files and unknown ids are skipped; only the scan as a whole can fail.
func (l *SiblingLookup) Lookup(corpusLanguage, filename, speechID string) (string, bool) {
	if speechID == "" {
		return "", false
	}

	log := l.logger.WithFields(logrus.Fields{"file": filename, "speech_id": speechID})
	for _, lang := range model.Languages {
		if strings.EqualFold(lang, corpusLanguage) {
			continue
		}

		idx, err := l.index(lang, filename)
		if err != nil {
			log.WithError(err).WithField("candidate", lang).Debug("Skipping fallback candidate")
			continue
		}

		code, ok := idx[speechID]
		if !ok {
			log.WithError(model.ErrFallbackSpeechIDNotFound).WithField("candidate", lang).Debug("Skipping fallback candidate")
			continue
		}

		log.WithFields(logrus.Fields{"candidate": lang, "language": code}).Info("Language resolved from sibling corpus")
		return code, true
	}
	return "", false
}

// index loads (or fetches from cache) the speech-id index for one sibling file
func (l *SiblingLookup) index(lang, filename string) (Index, error) {
	p := path.Join(strings.ToLower(lang), filename)
	key := cache.Key(p)

	if l.cache != nil {
		if idx, found := l.cache.Get(key); found {
			if idx == nil {
				return nil, model.ErrFallbackFileNotFound
			}
			return idx, nil
		}
	}

	idx, err := BuildIndex(l.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.cache != nil {
				l.cache.Set(key, nil, l.ttl)
			}
			return nil, model.ErrFallbackFileNotFound
		}
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(key, idx, l.ttl)
	}
	return idx, nil
}

// BuildIndex reads one transcript and records, per speech id, the first turn-opening
// line carrying a valid language code. Codes are validated but not corrected.
func BuildIndex(fsys fs.FS, name string) (Index, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	idx := make(Index)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		m := turnLanguage.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		id, code := m[1], strings.ToUpper(m[2])
		if _, seen := idx[id]; seen || !model.IsValidLanguage(code) {
			continue
		}
		idx[id] = code
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}

	return idx, nil
}
