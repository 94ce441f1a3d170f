package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// MaxLimit bounds a single page so a caller cannot force an unbounded
	// scan. Larger values are clamped, not rejected.
	MaxLimit = 100
)

// Params is a normalized page request. Zero or negative inputs fall back to
// the defaults.
type Params struct {
	Page  int
	Limit int
}

// Summary is the pagination block returned alongside every list response.
type Summary struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// FromQuery reads page/limit from the query string. Non-numeric values are
// treated as absent.
func FromQuery(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return New(page, limit)
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Params) Summarize(total int64) Summary {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Summary{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNext:      int64(p.Page)*int64(p.Limit) < total,
		HasPrev:      p.Page > 1,
	}
}
