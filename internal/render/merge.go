package render

import (
	"bytes"
	"io"
	"os"

	"github.com/bisagn/formalgen/internal/logger"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merger appends an uploaded attachment's pages to a generated PDF.
// Merge failure is never fatal: the caller always gets a usable PDF
// back, at worst without the attachment.
type Merger struct {
	log *logger.Logger
}

func NewMerger(log *logger.Logger) *Merger {
	return &Merger{log: log}
}

// Merge concatenates the attachment stored at path after the base
// document, preserving page order within each source. On any failure
// the unmerged base comes back unchanged.
func (m *Merger) Merge(base []byte, attachmentPath string) []byte {
	f, err := os.Open(attachmentPath)
	if err != nil {
		m.log.Warnf("attachment %s unreadable, returning unmerged pdf: %v", attachmentPath, err)
		return base
	}
	defer f.Close()

	var out bytes.Buffer
	readers := []io.ReadSeeker{bytes.NewReader(base), f}
	if err := api.MergeRaw(readers, &out, false, nil); err != nil {
		m.log.Warnf("pdf merge with %s failed, returning unmerged pdf: %v", attachmentPath, err)
		return base
	}
	return out.Bytes()
}

// PageCount reports the number of pages in a PDF file.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

// PageCountBytes reports the number of pages in an in-memory PDF.
func PageCountBytes(pdf []byte) (int, error) {
	return api.PageCount(bytes.NewReader(pdf), nil)
}
