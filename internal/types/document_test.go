package types

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentType(t *testing.T) {
	cases := map[string]DocumentType{
		"office-order": DocumentTypeOfficeOrder,
		"office_order": DocumentTypeOfficeOrder,
		"Circular":     DocumentTypeCircular,
		" policy ":     DocumentTypePolicy,
	}
	for slug, want := range cases {
		got, err := ParseDocumentType(slug)
		require.NoError(t, err, slug)
		assert.Equal(t, want, got)
	}

	_, err := ParseDocumentType("memo")
	assert.Error(t, err)
}

func TestSlugAndFileStem(t *testing.T) {
	assert.Equal(t, "office-order", DocumentTypeOfficeOrder.Slug())
	assert.Equal(t, "Office_Order", DocumentTypeOfficeOrder.FileStem())
	assert.Equal(t, "circular", DocumentTypeCircular.Slug())
	assert.Equal(t, "Policy", DocumentTypePolicy.FileStem())
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, LanguageHindi, NormalizeLanguage("hi"))
	assert.Equal(t, LanguageHindi, NormalizeLanguage(" hi "))
	for _, raw := range []string{"", "en", "HI", "hindi", "fr"} {
		assert.Equal(t, LanguageEnglish, NormalizeLanguage(raw), raw)
	}
}

func TestDefaultReference(t *testing.T) {
	year := time.Now().Year()
	assert.Equal(t,
		fmt.Sprintf("BISAG-N/Office Order/%d/", year),
		DocumentTypeOfficeOrder.DefaultReference(LanguageEnglish, "16-02-2026"))
	assert.Equal(t,
		fmt.Sprintf("बायसेग-एन/कार्यालय आदेश/%d/", year),
		DocumentTypeOfficeOrder.DefaultReference(LanguageHindi, "16-02-2026"))
	assert.Equal(t, "CIRCULAR-16-02-2026", DocumentTypeCircular.DefaultReference(LanguageEnglish, "16-02-2026"))
	assert.Equal(t, "POLICY-16-02-2026", DocumentTypePolicy.DefaultReference(LanguageHindi, "16-02-2026"))
}
