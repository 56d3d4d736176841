// Package listing is the shared paginated, filtered and sorted query used by
// every admin list endpoint.
package listing

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page          int
	Limit         int
	Search        string
	Filters       map[string]string
	SortField     string
	SortDirection string
}

var reserved = map[string]bool{
	"page":          true,
	"limit":         true,
	"search":        true,
	"sortField":     true,
	"sortDirection": true,
}

// FromQuery reads page, limit, search, sortField and sortDirection. Every
// other non-empty key is kept as a filter; the Spec decides which ones count.
func FromQuery(values url.Values) Params {
	p := Params{
		Page:          atoiDefault(values.Get("page"), DefaultPage),
		Limit:         atoiDefault(values.Get("limit"), DefaultLimit),
		Search:        strings.TrimSpace(values.Get("search")),
		SortField:     strings.TrimSpace(values.Get("sortField")),
		SortDirection: values.Get("sortDirection"),
		Filters:       map[string]string{},
	}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		if v := strings.TrimSpace(vals[0]); v != "" && v != "all" {
			p.Filters[key] = v
		}
	}

	return p.Normalize()
}

// Normalize clamps page and limit and canonicalises the direction.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if strings.EqualFold(p.SortDirection, "asc") {
		p.SortDirection = "asc"
	} else {
		p.SortDirection = "desc"
	}
	if p.Filters == nil {
		p.Filters = map[string]string{}
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
