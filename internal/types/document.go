package types

import (
	"fmt"
	"strings"
	"time"

	ierr "github.com/bisagn/formalgen/internal/errors"
)

// DocumentType identifies one of the formal document categories the
// office can issue.
type DocumentType string

const (
	DocumentTypeOfficeOrder DocumentType = "Office Order"
	DocumentTypeCircular    DocumentType = "Circular"
	DocumentTypePolicy      DocumentType = "Policy"
)

// DocumentTypes lists every supported type in display order.
var DocumentTypes = []DocumentType{
	DocumentTypeOfficeOrder,
	DocumentTypeCircular,
	DocumentTypePolicy,
}

// ParseDocumentType resolves a route slug ("office-order", "circular",
// "policy") to a DocumentType.
func ParseDocumentType(slug string) (DocumentType, error) {
	switch strings.ToLower(strings.TrimSpace(slug)) {
	case "office-order", "office_order":
		return DocumentTypeOfficeOrder, nil
	case "circular":
		return DocumentTypeCircular, nil
	case "policy":
		return DocumentTypePolicy, nil
	default:
		return "", ierr.NewError("unknown document type").
			WithHintf("Unknown document type: %s", slug).
			WithReportableDetails(map[string]any{"type": slug}).
			Mark(ierr.ErrValidation)
	}
}

// Slug returns the URL form of the document type.
func (t DocumentType) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(t), " ", "-"))
}

// FileStem is the base name used for download attachments,
// ex "Office_Order" -> Office_Order.pdf / Office_Order.docx.
func (t DocumentType) FileStem() string {
	return strings.ReplaceAll(string(t), " ", "_")
}

func (t DocumentType) Validate() error {
	switch t {
	case DocumentTypeOfficeOrder, DocumentTypeCircular, DocumentTypePolicy:
		return nil
	default:
		return ierr.NewError("unknown document type").
			WithHintf("Unknown document type: %s", t).
			Mark(ierr.ErrValidation)
	}
}

// Language is the output language of a generated document.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// NormalizeLanguage maps arbitrary form input to a supported language.
// Everything that is not literally "hi" becomes English.
func NormalizeLanguage(raw string) Language {
	if strings.TrimSpace(raw) == string(LanguageHindi) {
		return LanguageHindi
	}
	return LanguageEnglish
}

// DefaultReference returns the reference id substituted when the user
// leaves the field blank. Office orders carry the organisational
// pattern; circulars and policies derive theirs from the display date.
func (t DocumentType) DefaultReference(lang Language, displayDate string) string {
	switch t {
	case DocumentTypeOfficeOrder:
		year := time.Now().Year()
		if lang == LanguageHindi {
			return fmt.Sprintf("बायसेग-एन/कार्यालय आदेश/%d/", year)
		}
		return fmt.Sprintf("BISAG-N/Office Order/%d/", year)
	case DocumentTypeCircular:
		return fmt.Sprintf("CIRCULAR-%s", displayDate)
	case DocumentTypePolicy:
		return fmt.Sprintf("POLICY-%s", displayDate)
	default:
		return ""
	}
}

const (
	// ContentTypePDF is the media type of PDF downloads.
	ContentTypePDF = "application/pdf"
	// ContentTypeDocx is the OOXML word processing media type.
	ContentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)
