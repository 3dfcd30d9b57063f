package document

import (
	"time"

	"github.com/bisagn/formalgen/internal/types"
)

// Header is the three-line organisational letterhead.
type Header struct {
	OrgName    string `json:"org_name"`
	Ministry   string `json:"ministry"`
	Government string `json:"government"`
}

// Lines returns the non-empty header lines in display order.
func (h Header) Lines() []string {
	var lines []string
	for _, l := range []string{h.OrgName, h.Ministry, h.Government} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Person is a circular recipient from the staff directory. The
// mapstructure tags match the keys of the circular data file.
type Person struct {
	ID     int    `json:"id" mapstructure:"id"`
	NameEN string `json:"name_en" mapstructure:"name_en"`
	NameHI string `json:"name_hi" mapstructure:"name_hi"`
}

// Name returns the person's name in the requested language, falling
// back to the English form.
func (p Person) Name(lang types.Language) string {
	if lang == types.LanguageHindi && p.NameHI != "" {
		return p.NameHI
	}
	return p.NameEN
}

// Attachment is an uploaded Policy PDF persisted under the scoped
// uploads directory until it has been merged or embedded.
type Attachment struct {
	OriginalFilename string `json:"original_filename"`
	StoredPath       string `json:"stored_path"`
}

// Record is the canonical in-memory form of one generated document.
// A record is never mutated after build; a new preview replaces it
// wholesale in the session cache.
type Record struct {
	DocumentType types.DocumentType `json:"document_type"`
	Language     types.Language     `json:"language"`
	Header       Header             `json:"header"`
	// Title is the localized document title (Office Order carries a
	// configured one, the others use the layout's fixed title).
	Title     string `json:"title,omitempty"`
	Reference string `json:"reference"`
	// Date is the display date, always DD-MM-YYYY unless the user
	// supplied something unparseable, which passes through verbatim.
	Date    string `json:"date"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
	From    string `json:"from"`
	// To holds resolved recipient designations (Office Order, Policy).
	To []string `json:"to,omitempty"`
	// ToPeople holds the selected staff entries (Circular).
	ToPeople []Person `json:"to_people,omitempty"`
	// Attachment is set for Policy records with an uploaded PDF.
	Attachment *Attachment `json:"attachment,omitempty"`
}

// WithoutAttachment returns a copy of the record with the attachment
// cleared. Used after the stored file has been consumed and deleted.
func (r *Record) WithoutAttachment() *Record {
	clone := *r
	clone.Attachment = nil
	return &clone
}

// LogEntry is one append-only row of the document log.
type LogEntry struct {
	ID           string             `db:"id" json:"id"`
	DocumentType types.DocumentType `db:"document_type" json:"document_type"`
	Language     types.Language     `db:"language" json:"language"`
	ReferenceID  string             `db:"reference_id" json:"reference_id"`
	Content      string             `db:"content" json:"content"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}

// NewLogEntry builds a log row for a freshly generated record.
// Circulars and policies carry no reference of their own, so the log
// gets a synthetic one derived from the display date.
func NewLogEntry(r *Record) *LogEntry {
	ref := r.Reference
	switch r.DocumentType {
	case types.DocumentTypeCircular:
		ref = "CIRCULAR-" + r.Date
	case types.DocumentTypePolicy:
		ref = "POLICY-" + r.Date
	}
	return &LogEntry{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT_LOG),
		DocumentType: r.DocumentType,
		Language:     r.Language,
		ReferenceID:  ref,
		Content:      r.Body,
		CreatedAt:    time.Now().UTC(),
	}
}
