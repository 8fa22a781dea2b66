package docs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/groundchat/pkg/conv"
	"github.com/sandevgo/groundchat/pkg/log"
)

var (
	ErrUnsupportedType = errors.New("unsupported document type")
	ErrTooLarge        = errors.New("document exceeds size limit")
	ErrEmptyDocument   = errors.New("document has no extractable text")
)

// Document is a decoded upload: a display name plus the text blob the
// dispatcher grounds on. The raw file never travels further than this point.
type Document struct {
	Name   string
	Text   string
	Tokens int
}

type Ingestor struct {
	maxBytes int64
}

func NewIngestor(maxBytes int64) *Ingestor {
	return &Ingestor{maxBytes: maxBytes}
}

// FromFile decodes one accepted file into a Document. The accepted set is an
// extension filter: plain text, markdown, HTML and PDF.
func (i *Ingestor) FromFile(ctx context.Context, path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("stat document: %w", err)
	}
	if i.maxBytes > 0 && info.Size() > i.maxBytes {
		return Document{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, info.Size(), i.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read document: %w", err)
		}
		text = string(data)
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read document: %w", err)
		}
		text, err = conv.MarkdownToText(data)
		if err != nil {
			return Document{}, fmt.Errorf("decode markdown: %w", err)
		}
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("read document: %w", err)
		}
		text, err = conv.HTMLToText(string(data))
		if err != nil {
			return Document{}, fmt.Errorf("decode html: %w", err)
		}
	case ".pdf":
		text, err = extractPDF(path)
		if err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Document{}, ErrEmptyDocument
	}

	doc := Document{
		Name:   filepath.Base(path),
		Text:   text,
		Tokens: CountTokens(text),
	}

	log.FromCtx(ctx).Debug().
		Str("name", doc.Name).
		Int("chars", len(doc.Text)).
		Int("tokens", doc.Tokens).
		Msg("document ingested")

	return doc, nil
}
