// Package docdata loads the static bilingual configuration data each
// document type renders from (letterhead text, titles, staff
// directory).
package docdata

import (
	"path/filepath"
	"sync"

	"github.com/bisagn/formalgen/internal/config"
	"github.com/bisagn/formalgen/internal/domain/document"
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/spf13/viper"
)

// HeaderLines is the per-language letterhead as an ordered line list.
type HeaderLines struct {
	EN []string `mapstructure:"en"`
	HI []string `mapstructure:"hi"`
}

// Data is the static configuration for one document type.
type Data struct {
	Header  HeaderLines       `mapstructure:"header"`
	TitleEN string            `mapstructure:"title_en"`
	TitleHI string            `mapstructure:"title_hi"`
	People  []document.Person `mapstructure:"people"`
}

// Title returns the configured document title for a language, if any.
func (d *Data) Title(lang types.Language) string {
	if lang == types.LanguageHindi {
		return d.TitleHI
	}
	return d.TitleEN
}

// HeaderFor builds the letterhead triple for a language. Missing lines
// come back empty, never as an error.
func (d *Data) HeaderFor(lang types.Language) document.Header {
	lines := d.Header.EN
	if lang == types.LanguageHindi {
		lines = d.Header.HI
	}
	var h document.Header
	if len(lines) > 0 {
		h.OrgName = lines[0]
	}
	if len(lines) > 1 {
		h.Ministry = lines[1]
	}
	if len(lines) > 2 {
		h.Government = lines[2]
	}
	return h
}

// Loader reads and caches the per-type JSON data files. A missing or
// unreadable file yields an empty structure, never a fatal error.
type Loader struct {
	dir string
	log *logger.Logger

	mu     sync.Mutex
	loaded map[types.DocumentType]*Data
}

func NewLoader(cfg *config.Configuration, log *logger.Logger) *Loader {
	return &Loader{
		dir:    cfg.Assets.DocumentDataDir,
		log:    log,
		loaded: make(map[types.DocumentType]*Data),
	}
}

var dataFiles = map[types.DocumentType]string{
	types.DocumentTypeOfficeOrder: "office_order.json",
	types.DocumentTypeCircular:    "circular.json",
	types.DocumentTypePolicy:      "policy.json",
}

// Get returns the static data for a document type, loading it on first
// use.
func (l *Loader) Get(docType types.DocumentType) *Data {
	l.mu.Lock()
	defer l.mu.Unlock()

	if data, ok := l.loaded[docType]; ok {
		return data
	}

	data := l.read(docType)
	l.loaded[docType] = data
	return data
}

func (l *Loader) read(docType types.DocumentType) *Data {
	name, ok := dataFiles[docType]
	if !ok {
		return &Data{}
	}
	path := filepath.Join(l.dir, name)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		l.log.Errorf("document data file %s not readable: %v", path, err)
		return &Data{}
	}

	var data Data
	if err := v.Unmarshal(&data); err != nil {
		l.log.Errorf("document data file %s not parseable: %v", path, err)
		return &Data{}
	}
	return &data
}
