package validation

import (
	"net/url"
	"strconv"

	"protrack/internal/model"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery holds the validated query parameters for the project list endpoint.
type ListQuery struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ParseListQuery coerces and validates list-endpoint query parameters.
// page defaults to 1 and must be >= 1; limit defaults to 10 and must be 1..100.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{Page: defaultPage, Limit: defaultLimit}

	if s := values.Get("status"); s != "" {
		if !model.Status(s).Valid() {
			return q, NewError("Invalid status")
		}
		q.Status = s
	}

	q.Search = values.Get("search")

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, NewError("Invalid page")
		}
		q.Page = page
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return q, NewError("Invalid limit")
		}
		q.Limit = limit
	}

	return q, nil
}
