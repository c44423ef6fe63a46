package pipeline

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ppiankov/ecpc/internal/model"
)

// TranscriptNameLength is the length of a transcript filename such as ep-09-01-12.txt
const TranscriptNameLength = 15

// Century expands a two-digit session year: below 50 is the 2000s
func Century(year int) string {
	if year < 50 {
		return "20"
	}
	return "19"
}

// OutputIdentifier builds the output filename for a transcript, e.g.
// ep-09-01-12.txt in the EN corpus becomes EN20090112.xml.
func OutputIdentifier(filename, language string) (string, error) {
	if len(filename) != TranscriptNameLength {
		return "", fmt.Errorf("%w: %s has length %d, want %d", model.ErrMalformedFilename, filename, len(filename), TranscriptNameLength)
	}
	if !strings.HasSuffix(filename, ".txt") {
		return "", fmt.Errorf("%w: %s is not a .txt file", model.ErrMalformedFilename, filename)
	}

	base := strings.TrimPrefix(strings.TrimSuffix(filename, ".txt"), "ep-")
	parts := strings.Split(base, "-")
	for _, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return "", fmt.Errorf("%w: %s has non-numeric session part %q", model.ErrMalformedFilename, filename, p)
		}
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", model.ErrMalformedFilename, filename, err)
	}

	return strings.ToUpper(language) + Century(year) + strings.Join(parts, "") + ".xml", nil
}

// ListTranscripts returns the transcript names of one corpus, sorted by name.
// With an override only its base name is returned; it is looked up in the corpus.
func ListTranscripts(fsys fs.FS, language, override string) ([]string, error) {
	if override != "" {
		return []string{path.Base(filepath.ToSlash(override))}, nil
	}

	entries, err := fs.ReadDir(fsys, strings.ToLower(language))
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
