package listing_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/testutil"
)

var userSpec = listing.Spec{
	Sorts: map[string]string{
		"name":      "users.name",
		"createdAt": "users.created_at",
	},
	DefaultSort: "users.created_at",
	Tiebreak:    "users.id",
	Filters: map[string]string{
		"role":      "users.role",
		"isBlocked": "users.is_blocked",
	},
	SearchColumns: []string{"users.name", "users.email", "CAST(users.id AS TEXT)"},
}

func TestFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("limit", "500")
	q.Set("search", "  Ann ")
	q.Set("sortField", "name")
	q.Set("sortDirection", "ASC")
	q.Set("isBlocked", "true")
	q.Set("role", "all")
	q.Set("city", "")

	p := listing.FromQuery(q)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, listing.MaxLimit, p.Limit)
	assert.Equal(t, "Ann", p.Search)
	assert.Equal(t, "name", p.SortField)
	assert.Equal(t, "asc", p.SortDirection)
	assert.Equal(t, map[string]string{"isBlocked": "true"}, p.Filters)
	assert.Equal(t, 200, p.Offset())
}

func TestFromQuery_Defaults(t *testing.T) {
	p := listing.FromQuery(url.Values{"page": {"x"}, "limit": {"-4"}})

	assert.Equal(t, listing.DefaultPage, p.Page)
	assert.Equal(t, listing.DefaultLimit, p.Limit)
	assert.Equal(t, "desc", p.SortDirection)
	assert.Empty(t, p.Filters)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, listing.TotalPages(12, 5))
	assert.Equal(t, 2, listing.TotalPages(10, 5))
	assert.Equal(t, 0, listing.TotalPages(0, 5))
	assert.Equal(t, 1, listing.TotalPages(1, 100))
}

func TestOrderBy_UnknownFieldFallsBack(t *testing.T) {
	p := listing.Params{SortField: "password_hash; DROP TABLE users", SortDirection: "asc"}.Normalize()
	assert.Equal(t, "users.created_at ASC, users.id ASC", userSpec.OrderBy(p))

	p = listing.Params{SortField: "name"}.Normalize()
	assert.Equal(t, "users.name DESC, users.id DESC", userSpec.OrderBy(p))
}

func TestFind_PaginatesFiltersAndSearches(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		u := models.User{
			Name:         fmt.Sprintf("User %02d", i),
			Email:        fmt.Sprintf("user%02d@example.com", i),
			PasswordHash: "x",
			Role:         "customer",
			IsBlocked:    i%4 == 0,
		}
		require.NoError(t, gdb.Create(&u).Error)
	}

	base := func() *gorm.DB { return gdb.Model(&models.User{}) }

	t.Run("second page of five", func(t *testing.T) {
		p := listing.Params{Page: 2, Limit: 5, SortField: "name", SortDirection: "asc"}
		rows, total, err := listing.Find[models.User](ctx, base(), userSpec, p)
		require.NoError(t, err)

		page := listing.NewPage(rows, total, p)
		assert.Len(t, page.Data, 5)
		assert.EqualValues(t, 12, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, "User 06", page.Data[0].Name)
		assert.True(t, page.Success)
	})

	t.Run("last partial page", func(t *testing.T) {
		p := listing.Params{Page: 3, Limit: 5, SortField: "name", SortDirection: "asc"}
		rows, _, err := listing.Find[models.User](ctx, base(), userSpec, p)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("boolean filter", func(t *testing.T) {
		p := listing.Params{Filters: map[string]string{"isBlocked": "true", "unknown": "x"}}
		rows, total, err := listing.Find[models.User](ctx, base(), userSpec, p)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		for _, u := range rows {
			assert.True(t, u.IsBlocked)
		}
	})

	t.Run("case insensitive search", func(t *testing.T) {
		p := listing.Params{Search: "USER1"}
		_, total, err := listing.Find[models.User](ctx, base(), userSpec, p)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total) // user10, user11, user12
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		p := listing.Params{Search: "%"}
		rows, total, err := listing.Find[models.User](ctx, base(), userSpec, p)
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, rows)
	})
}
