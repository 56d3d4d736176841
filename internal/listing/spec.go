package listing

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Spec describes what one entity allows: API sort names and filter keys map
// to whitelisted columns, so request input never reaches SQL as identifiers.
type Spec struct {
	Sorts         map[string]string
	DefaultSort   string
	Tiebreak      string
	Filters       map[string]string
	SearchColumns []string
}

// Where applies search and filters.
func (s Spec) Where(q *gorm.DB, p Params) *gorm.DB {
	if p.Search != "" && len(s.SearchColumns) > 0 {
		like := "%" + escapeLike(strings.ToLower(p.Search)) + "%"

		parts := make([]string, 0, len(s.SearchColumns))
		args := make([]any, 0, len(s.SearchColumns))
		for _, col := range s.SearchColumns {
			parts = append(parts, "LOWER("+col+") LIKE ? ESCAPE '\\'")
			args = append(args, like)
		}
		q = q.Where("("+strings.Join(parts, " OR ")+")", args...)
	}

	for key, raw := range p.Filters {
		col, ok := s.Filters[key]
		if !ok {
			continue
		}
		q = q.Where(col+" = ?", filterValue(raw))
	}

	return q
}

// OrderBy returns the ORDER BY clause for p.
func (s Spec) OrderBy(p Params) string {
	col, ok := s.Sorts[p.SortField]
	if !ok {
		col = s.DefaultSort
	}
	dir := "DESC"
	if p.SortDirection == "asc" {
		dir = "ASC"
	}

	order := col + " " + dir
	if s.Tiebreak != "" && s.Tiebreak != col {
		order += ", " + s.Tiebreak + " " + dir
	}
	return order
}

// Find counts and fetches one page of q. q carries the Model and joins;
// scopes (selects, preloads) only apply to the page query, not the count.
func Find[T any](ctx context.Context, q *gorm.DB, s Spec, p Params, scopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	p = p.Normalize()
	q = s.Where(q.WithContext(ctx), p).Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	out := make([]T, 0, p.Limit)
	if total == 0 {
		return out, 0, nil
	}

	if err := q.
		Scopes(scopes...).
		Order(s.OrderBy(p)).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func filterValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
