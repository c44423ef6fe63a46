package model

// Document is a converted transcript file
type Document struct {
	SourceFilename string          // e.g. ep-09-01-12.txt
	Identifier     string          // e.g. EN20090112.xml
	Language       string          // Corpus language, upper case
	Interventions  []*Intervention // In source order, all finalized
}
