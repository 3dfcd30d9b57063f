package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "16-02-2026", FormatDate("2026-02-16"))
	assert.Equal(t, "01-01-2000", FormatDate("2000-01-01"))
}

func TestFormatDatePassesThroughUnparseableInput(t *testing.T) {
	for _, in := range []string{"", "16-02-2026", "2026/02/16", "sixteenth of February", "2026-13-45"} {
		assert.Equal(t, in, FormatDate(in))
	}
}

func TestFormatDateIsIdempotentOnDisplayForm(t *testing.T) {
	out := FormatDate("2026-02-16")
	assert.Equal(t, out, FormatDate(out))
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(DateDisplayLayout), Today())
}
