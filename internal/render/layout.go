package render

import (
	"github.com/bisagn/formalgen/internal/docdata"
	"github.com/bisagn/formalgen/internal/types"
)

// RecipientStyle selects how a layout renders its recipient block.
type RecipientStyle int

const (
	// RecipientsPlain lists resolved designations line by line.
	RecipientsPlain RecipientStyle = iota
	// RecipientsSignatureTable renders the circulation table with
	// serial number, name and an empty signature cell.
	RecipientsSignatureTable
	// RecipientsBullets renders a bulleted designation list.
	RecipientsBullets
)

// Layout describes the formatting differences between document types
// as data. The engine itself is type-agnostic.
type Layout struct {
	// TitleFromData pulls the localized title out of the static data
	// file instead of using the fixed pair below.
	TitleFromData bool
	FixedTitleEN  string
	FixedTitleHI  string

	ShowReference bool
	ShowSubject   bool
	ShowAttached  bool
	Recipients    RecipientStyle

	// TemplateName is the HTML preview template file.
	TemplateName string
}

var layouts = map[types.DocumentType]Layout{
	types.DocumentTypeOfficeOrder: {
		TitleFromData: true,
		ShowReference: true,
		Recipients:    RecipientsPlain,
		TemplateName:  "office_order.html",
	},
	types.DocumentTypeCircular: {
		FixedTitleEN: "Circular",
		FixedTitleHI: "परिपत्र",
		ShowSubject:  true,
		Recipients:   RecipientsSignatureTable,
		TemplateName: "circular.html",
	},
	types.DocumentTypePolicy: {
		FixedTitleEN: "Policy",
		FixedTitleHI: "नीति",
		ShowSubject:  true,
		ShowAttached: true,
		Recipients:   RecipientsBullets,
		TemplateName: "policy.html",
	},
}

// LayoutFor returns the layout descriptor for a document type.
func LayoutFor(docType types.DocumentType) Layout {
	return layouts[docType]
}

// Title resolves the display title for a record.
func (l Layout) Title(data *docdata.Data, lang types.Language) string {
	if l.TitleFromData {
		return data.Title(lang)
	}
	if lang == types.LanguageHindi {
		return l.FixedTitleHI
	}
	return l.FixedTitleEN
}

// labels carries the bilingual field captions.
type labels struct {
	Ref      string
	Date     string
	Subject  string
	To       string
	Attached string
	SrNo     string
	Name     string
	Sign     string
}

func labelsFor(lang types.Language) labels {
	if lang == types.LanguageHindi {
		return labels{
			Ref:      "संदर्भ :",
			Date:     "दिनांक :",
			Subject:  "विषय :",
			To:       "प्रति :",
			Attached: "संलग्न :",
			SrNo:     "क्र.",
			Name:     "नाम",
			Sign:     "हस्ताक्षर",
		}
	}
	return labels{
		Ref:      "Ref:",
		Date:     "Date :",
		Subject:  "Subject :",
		To:       "To :",
		Attached: "Attached :",
		SrNo:     "Sr. No.",
		Name:     "Name",
		Sign:     "Sign",
	}
}
