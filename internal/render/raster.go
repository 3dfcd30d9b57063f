package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ierr "github.com/bisagn/formalgen/internal/errors"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
)

// rasterDPI matches the attachment-embed resolution contract.
const rasterDPI = 200

// Rasterizer converts PDF pages to PNG images through an external
// binary (pdftoppm). The binary is an optional system dependency;
// callers must check Available and degrade when it is missing.
type Rasterizer struct {
	binary string
	log    *logger.Logger
}

func NewRasterizer(binary string, log *logger.Logger) *Rasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return &Rasterizer{binary: binary, log: log}
}

// Available reports whether the rasterizer binary can be found.
func (r *Rasterizer) Available() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// RenderPage rasterizes a single 1-based page of a PDF to a temporary
// PNG file and returns its path. The caller owns the file and must
// remove it after use.
func (r *Rasterizer) RenderPage(pdfPath string, page int) (string, error) {
	prefix := filepath.Join(os.TempDir(), types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAGE_IMAGE))

	cmd := exec.Command(r.binary,
		"-png",
		"-r", fmt.Sprintf("%d", rasterDPI),
		"-f", fmt.Sprintf("%d", page),
		"-l", fmt.Sprintf("%d", page),
		"-singlefile",
		pdfPath,
		prefix,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", ierr.WithError(err).
			WithMessagef("rasterize page %d of %s failed", page, pdfPath).
			WithReportableDetails(map[string]any{
				"stderr": stderr.String(),
			}).
			Mark(ierr.ErrSystem)
	}

	out := prefix + ".png"
	if _, err := os.Stat(out); err != nil {
		return "", ierr.WithError(err).
			WithMessagef("rasterizer produced no output for page %d", page).
			Mark(ierr.ErrSystem)
	}
	return out, nil
}
