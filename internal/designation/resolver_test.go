package designation

import (
	"testing"

	"github.com/bisagn/formalgen/internal/logger"
	"github.com/bisagn/formalgen/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver(logger.L)

	assert.Equal(t, "Director General", r.Resolve("Director General", types.LanguageEnglish))
	assert.Equal(t, "महानिदेशक", r.Resolve("Director General", types.LanguageHindi))
}

func TestResolveUnknownKeyReturnsKey(t *testing.T) {
	r := NewResolver(logger.L)

	assert.Equal(t, "NonExistentPosition", r.Resolve("NonExistentPosition", types.LanguageEnglish))
	assert.Equal(t, "NonExistentPosition", r.Resolve("NonExistentPosition", types.LanguageHindi))
}

func TestResolveEmptyKey(t *testing.T) {
	r := NewResolver(logger.L)

	assert.Equal(t, "", r.Resolve("", types.LanguageEnglish))
}

func TestResolveMissingLanguageVariantFallsBackToKey(t *testing.T) {
	r := newResolver(map[string]Entry{
		"Registrar": {EN: "Registrar"},
	}, logger.L)

	// A defined fallback to the raw key, not a translation substitution.
	assert.Equal(t, "Registrar", r.Resolve("Registrar", types.LanguageHindi))
}

func TestAllKnownKeysResolveNonEmptyInBothLanguages(t *testing.T) {
	r := NewResolver(logger.L)

	for _, key := range r.Keys() {
		assert.NotEmpty(t, r.Resolve(key, types.LanguageEnglish), "en variant for %q", key)
		assert.NotEmpty(t, r.Resolve(key, types.LanguageHindi), "hi variant for %q", key)
	}
}
