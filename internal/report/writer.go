// Package report streams page records as a JSON array.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"assetcrawler/internal/models"
)

// Format selects the textual layout of the output stream.
type Format int

const (
	// FormatJSON streams a strictly valid JSON array.
	FormatJSON Format = iota
	// FormatLegacy reproduces the historical layout, which leaves a comma
	// after every element and is therefore not valid JSON.
	FormatLegacy
)

// Writer emits records as soon as they are written; nothing is buffered
// across records.
type Writer struct {
	w      io.Writer
	format Format
	count  int
}

func NewWriter(w io.Writer, format Format) *Writer {
	return &Writer{w: w, format: format}
}

func (wr *Writer) Begin() error {
	_, err := io.WriteString(wr.w, "[\n")
	return err
}

func (wr *Writer) Write(rec models.PageRecord) error {
	var (
		fragment string
		err      error
	)
	switch wr.format {
	case FormatLegacy:
		fragment = legacyFragment(rec)
	default:
		fragment, err = wr.jsonFragment(rec)
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(wr.w, fragment); err != nil {
		return err
	}
	wr.count++
	return nil
}

func (wr *Writer) End() error {
	closing := "]\n"
	if wr.format == FormatJSON && wr.count > 0 {
		closing = "\n]\n"
	}
	_, err := io.WriteString(wr.w, closing)
	return err
}

func (wr *Writer) jsonFragment(rec models.PageRecord) (string, error) {
	if rec.Assets == nil {
		rec.Assets = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("\t", "\t")
	if err := enc.Encode(rec); err != nil {
		return "", fmt.Errorf("encode record %q: %w", rec.URL, err)
	}
	fragment := "\t" + strings.TrimSuffix(buf.String(), "\n")
	if wr.count > 0 {
		fragment = ",\n" + fragment
	}
	return fragment, nil
}

func legacyFragment(rec models.PageRecord) string {
	var b strings.Builder
	b.WriteString("\t{\n")
	b.WriteString("\t\t\"url\" : \"" + rec.URL + "\",\n")
	b.WriteString("\t\t\"assets\" : [\n")
	for _, asset := range rec.Assets {
		b.WriteString("\t\t\t\t\"" + asset + "\",\n")
	}
	b.WriteString("\t\t]\n")
	b.WriteString("\t},\n")
	b.WriteString("\n")
	return b.String()
}
