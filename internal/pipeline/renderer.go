package pipeline

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/ecpc/internal/model"
	"gopkg.in/yaml.v3"
)

type xmlDocument struct {
	XMLName xml.Name  `xml:"ecpc_EP"`
	Header  xmlHeader `xml:"header"`
	Body    xmlBody   `xml:"body"`
	Back    struct{}  `xml:"back"`
}

type xmlHeader struct {
	Filename string `xml:"filename,attr"`
	Language string `xml:"language,attr"`
}

type xmlBody struct {
	Interventions []xmlIntervention `xml:"intervention"`
}

type xmlIntervention struct {
	Speakers []xmlSpeaker `xml:"speaker"`
	Speech   xmlSpeech    `xml:"speech"`
}

type xmlSpeaker struct {
	Name        string         `xml:"name"`
	Affiliation xmlAffiliation `xml:"affiliation"`
	Post        struct{}       `xml:"post"`
}

type xmlAffiliation struct {
	Party string `xml:"EPparty,attr"`
}

type xmlSpeech struct {
	Ref      string `xml:"ref,attr,omitempty"`
	Language string `xml:"language,attr"`
	Text     string `xml:",chardata"`
}

// RenderXML serializes a finalized document
func RenderXML(doc *model.Document) ([]byte, error) {
	out := xmlDocument{
		Header: xmlHeader{Filename: doc.Identifier, Language: doc.Language},
	}

	for _, i := range doc.Interventions {
		xi := xmlIntervention{
			Speech: xmlSpeech{Language: i.Language, Text: i.Text},
		}
		if i.SpeechID != "" {
			xi.Speech.Ref = "s" + i.SpeechID
		}
		for _, s := range i.Speakers {
			xi.Speakers = append(xi.Speakers, xmlSpeaker{
				Name:        s.Name,
				Affiliation: xmlAffiliation{Party: s.Affiliation},
			})
		}
		out.Body.Interventions = append(out.Body.Interventions, xi)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode xml: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// WriteDocument renders doc into dir and returns the written path
func WriteDocument(doc *model.Document, dir string) (string, error) {
	data, err := RenderXML(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, doc.Identifier)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

// speakerReport is the YAML layout of the speaker report
type speakerReport struct {
	Mentions int                  `yaml:"mentions"`
	Speakers []model.SpeakerCount `yaml:"speakers"`
}

// WriteSpeakerReport writes the run's speaker summary as YAML
func WriteSpeakerReport(registry *model.SpeakerRegistry, path string) error {
	data, err := yaml.Marshal(speakerReport{
		Mentions: registry.Len(),
		Speakers: registry.Summary(),
	})
	if err != nil {
		return fmt.Errorf("marshal speaker report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write speaker report: %w", err)
	}
	return nil
}
