package ports

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// DateLayout is the wire format of startDate and endDate.
const DateLayout = "2006-01-02"

// Criteria is the normalized set of search, id and date constraints shared by
// a paged listing, its count, and the unpaginated export.
type Criteria struct {
	Search   string
	StoreID  *int64
	RegionID *int64
	// DateRange is nil unless both bounds were supplied.
	DateRange *DateRange
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Until returns the exclusive upper bound covering the whole End day.
func (r DateRange) Until() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// Page is a 1-based page window.
type Page struct {
	Number int
	Limit  int
}

// NewPage applies the defaults and clamps both values to at least 1.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset is the number of rows skipped before this page. It saturates at
// math.MaxInt so an oversized page reads past the end instead of wrapping.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Limit
}

// TotalPages is ceil(total / limit).
func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}

// ParseID reads an optional id filter. Empty and "all" mean no filter.
func ParseID(raw string) (*int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, false
	}
	return &id, true
}

// PageResult is one page of rows plus the paging metadata.
type PageResult[T any] struct {
	Items       []T
	TotalPages  int
	CurrentPage int
}
