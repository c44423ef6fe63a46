package model

import "errors"

// Diagnostic conditions raised while converting transcripts.
// The extraction core only logs these; file-level code returns them wrapped.
var (
	ErrMissingSpeechID          = errors.New("speech id not found")
	ErrMissingName              = errors.New("name not found")
	ErrUnresolvedAffiliation    = errors.New("affiliation not found")
	ErrInvalidAffiliation       = errors.New("invalid affiliation")
	ErrUnresolvedLanguage       = errors.New("language not found")
	ErrFallbackFileNotFound     = errors.New("fallback file not found")
	ErrFallbackSpeechIDNotFound = errors.New("speech id not found in fallback file")
	ErrMalformedFilename        = errors.New("malformed transcript filename")
)
