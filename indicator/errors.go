package indicator

import "errors"

var (
	// ErrNoHeader is returned when a file ends before its header row.
	ErrNoHeader = errors.New("missing header row")
	// ErrNoCountryColumn is returned when the header lacks "Country Code".
	ErrNoCountryColumn = errors.New(`missing "Country Code" column`)
	// ErrCountryNotFound is returned when no row matches the country code.
	ErrCountryNotFound = errors.New("country not found")
)
