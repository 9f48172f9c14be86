package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextDecoder extracts plain UTF-8 text from an uploaded document.
type TextDecoder interface {
	Decode(data []byte) (string, error)
}

// DecoderRegistry selects a TextDecoder by file extension.
type DecoderRegistry struct {
	decoders map[string]TextDecoder
}

func NewDecoderRegistry() *DecoderRegistry {
	return &DecoderRegistry{
		decoders: map[string]TextDecoder{
			".txt":  &plainTextDecoder{},
			".pdf":  &pdfDecoder{},
			".docx": &docxDecoder{},
		},
	}
}

// DecoderFor returns the decoder for the file's extension.
func (r *DecoderRegistry) DecoderFor(filename string) (TextDecoder, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	decoder, ok := r.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file extension: %q (supported: .txt, .pdf, .docx)", ext)
	}
	return decoder, nil
}

type plainTextDecoder struct{}

func (d *plainTextDecoder) Decode(data []byte) (string, error) {
	return string(data), nil
}

type pdfDecoder struct{}

func (d *pdfDecoder) Decode(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

type docxDecoder struct{}

func (d *docxDecoder) Decode(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
