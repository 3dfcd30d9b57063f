package types

import "time"

const (
	// DateInputLayout is the strict form-input date format.
	DateInputLayout = "2006-01-02"
	// DateDisplayLayout is how every document displays its date.
	DateDisplayLayout = "02-01-2006"
)

// FormatDate converts a YYYY-MM-DD input into DD-MM-YYYY display form.
// Unparseable input is returned verbatim: a malformed date is surfaced
// to the user as typed rather than rejected.
func FormatDate(raw string) string {
	d, err := time.Parse(DateInputLayout, raw)
	if err != nil {
		return raw
	}
	return d.Format(DateDisplayLayout)
}

// Today returns the current date in display form.
func Today() string {
	return time.Now().Format(DateDisplayLayout)
}
