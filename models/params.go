package models

import (
	"fmt"
	"net/http"
	"strconv"
)

const maxListLimit = 1000

// ListParams are the server-side list filters shared by the record
// tables: an optional status filter, a free-text search term, and a row
// limit. Results are always newest-first.
type ListParams struct {
	Status string
	Search string
	Limit  int
}

// ParseListParams reads ?status=, ?search= and ?limit= from the request.
func ParseListParams(r *http.Request) (ListParams, error) {
	q := r.URL.Query()
	p := ListParams{
		Status: q.Get("status"),
		Search: q.Get("search"),
		Limit:  maxListLimit,
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p, fmt.Errorf("invalid limit %q", raw)
		}
		if n < p.Limit {
			p.Limit = n
		}
	}

	switch p.Status {
	case "", StatusPending, StatusApproved, StatusRejected:
	default:
		// Vehicle listings reuse the same params with their own states.
		if !ValidVehicleStatus(p.Status) {
			return p, fmt.Errorf("unknown status %q", p.Status)
		}
	}
	return p, nil
}
