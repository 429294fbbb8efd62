package dto

import "strings"

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "name"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

type Filter struct {
	Name      string `query:"name"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
}

// Normalize fills the defaults shared by every list endpoint.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if strings.EqualFold(f.SortOrder, SortOrderDesc) {
		f.SortOrder = SortOrderDesc
	} else {
		f.SortOrder = SortOrderAsc
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
