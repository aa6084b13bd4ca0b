package strapi

import "fmt"

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// DefaultPagination is what a list reports when the CMS sent no pagination.
func DefaultPagination() Pagination {
	return Pagination{Page: 1}
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Envelope is the {data, meta} wrapper the CMS returns for every resource.
type Envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// PageInfo returns the envelope pagination, or DefaultPagination when absent.
func (e Envelope[T]) PageInfo() Pagination {
	if e.Meta == nil || e.Meta.Pagination == nil {
		return DefaultPagination()
	}
	return *e.Meta.Pagination
}

// Record is one CMS entry as the upstream sent it. Field shapes belong to
// the CMS content model, so attributes pass through untouched.
type Record map[string]any

// Str returns field as a string. Numbers and booleans are formatted; missing,
// null and composite values yield "".
func (r Record) Str(field string) string {
	switch v := r[field].(type) {
	case string:
		return v
	case float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

type BlogPost = Record

type (
	HeroBannerData     = Envelope[Record]
	MidBannerData      = Envelope[Record]
	CollectionsData    = Envelope[[]Record]
	VariantColorData   = Envelope[[]Record]
	AboutUsData        = Envelope[Record]
	FAQData            = Envelope[Record]
	ContentPageData    = Envelope[Record]
	BlogData           = Envelope[[]Record]
	BlogCategoriesData = Envelope[[]Record]
)
