// Package designation maps organisational role keys to their bilingual
// display strings.
package designation

import (
	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
)

// Entry is the bilingual display pair for one role.
type Entry struct {
	EN string
	HI string
}

// Resolver performs safe bilingual lookups over an immutable role map.
type Resolver struct {
	entries map[string]Entry
	keys    []string
	log     *logger.Logger
}

// NewResolver returns a Resolver over the official role directory.
func NewResolver(log *logger.Logger) *Resolver {
	return newResolver(officialDesignations, log)
}

func newResolver(entries map[string]Entry, log *logger.Logger) *Resolver {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return &Resolver{entries: entries, keys: keys, log: log}
}

// Resolve returns the localized display string for a role key.
// An empty key resolves to ""; an unknown key resolves to itself; a
// known key whose requested language variant is missing resolves to
// the raw key. Resolve never fails.
func (r *Resolver) Resolve(key string, lang types.Language) string {
	if key == "" {
		return ""
	}
	entry, ok := r.entries[key]
	if !ok {
		r.log.Warnf("designation key %q not found", key)
		return key
	}
	switch lang {
	case types.LanguageHindi:
		if entry.HI == "" {
			return key
		}
		return entry.HI
	default:
		if entry.EN == "" {
			return key
		}
		return entry.EN
	}
}

// Keys returns every known role key, for the form payload.
func (r *Resolver) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// officialDesignations is the official BISAG-N designation mapping.
// Immutable after load.
var officialDesignations = map[string]Entry{
	"Director General": {
		EN: "Director General",
		HI: "महानिदेशक",
	},
	"Special Director General": {
		EN: "Special Director General",
		HI: "विशेष महानिदेशक",
	},
	"Chief Vigilance Officer": {
		EN: "Chief Vigilance Officer",
		HI: "मुख्य सतर्कता अधिकारी",
	},
	"Director-Geo Spatial Applications": {
		EN: "Director-Geo Spatial Applications",
		HI: "निदेशक-भू-स्थानिक अनुप्रयोग",
	},
	"Additional Director": {
		EN: "Additional Director",
		HI: "अपर निदेशक",
	},
	"Director-Defence Applications": {
		EN: "Director-Defence Applications",
		HI: "निदेशक-रक्षा अनुप्रयोग",
	},
	"Additional Director cum CISO": {
		EN: "Additional Director cum CISO",
		HI: "अतिरिक्त निदेशक सह सीआईएसओ",
	},
	"Director- SATCOM Applications": {
		EN: "Director- SATCOM Applications",
		HI: "सैटकॉम अनुप्रयोगों के निदेशक",
	},
	"Senior Manager": {
		EN: "Senior Manager",
		HI: "वरिष्ठ प्रबंधक",
	},
	"Manager - IT": {
		EN: "Manager - IT",
		HI: "प्रबंधक - आईटी",
	},
	"Manager - Legal & Administration": {
		EN: "Manager - Legal & Administration",
		HI: "प्रबंधक - कानूनी एवं प्रशासनिक",
	},
	"Project Manager": {
		EN: "Project Manager",
		HI: "परियोजना प्रबंधक",
	},
	"Assistant Project Manager": {
		EN: "Assistant Project Manager",
		HI: "सहायक परियोजना प्रबंधक",
	},
	"Director -Administration": {
		EN: "Director -Administration",
		HI: "निदेशक - प्रशासन",
	},
	"Purchase Officer": {
		EN: "Purchase Officer",
		HI: "क्रय अधिकारी",
	},
	"Director Standardisation": {
		EN: "Director Standardisation",
		HI: "निदेशक मानकीकरण",
	},
	"Interns": {
		EN: "Interns",
		HI: "प्रशिक्षार्थियों",
	},
	"All Employees": {
		EN: "All Employees",
		HI: "सभी कर्मचारी",
	},
}
