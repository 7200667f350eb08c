package handling

import (
	"net/http"
	"strconv"

	"comparador_server/lib"
	"comparador_server/services"
)

// ParseListOptions parses HTTP query parameters into listing options.
// Unknown parameters are ignored; malformed values are reported.
func ParseListOptions(r *http.Request) (*services.ListOptions, error) {
	query := r.URL.Query()

	opts := &services.ListOptions{}

	if includeHistory := lib.SanitizeString(query.Get("include_history"), true, true); includeHistory != "" {
		val, err := strconv.ParseBool(includeHistory)
		if err != nil {
			return nil, err
		}
		opts.IncludeHistory = val
	}

	return opts, nil
}
