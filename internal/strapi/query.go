package strapi

import (
	"net/url"
	"strconv"
	"strings"
)

// valueUnescaper keeps characters the CMS query grammar relies on readable.
var valueUnescaper = strings.NewReplacer("%3A", ":", "%2C", ",")

// Query builds a CMS query string in insertion order. Keys are emitted
// verbatim so bracketed directives such as filters[Slug][$eq] stay intact.
type Query struct {
	parts []string
}

func NewQuery() *Query {
	return &Query{}
}

// Raw appends key=value without escaping.
func (q *Query) Raw(key, value string) *Query {
	q.parts = append(q.parts, key+"="+value)
	return q
}

// Value appends key=value with value query-escaped.
func (q *Query) Value(key, value string) *Query {
	return q.Raw(key, escapeValue(value))
}

// Populate appends populate[1]=f1&populate[2]=f2...
func (q *Query) Populate(fields ...string) *Query {
	for i, f := range fields {
		q.Raw("populate["+strconv.Itoa(i+1)+"]", f)
	}
	return q
}

// PopulateAll appends populate=*.
func (q *Query) PopulateAll() *Query {
	return q.Raw("populate", "*")
}

func (q *Query) Sort(sortBy string) *Query {
	return q.Value("sort", sortBy)
}

// Limit appends pagination[limit]; a negative start leaves pagination[start] out.
func (q *Query) Limit(start, limit int) *Query {
	if start >= 0 {
		q.Raw("pagination[start]", strconv.Itoa(start))
	}
	return q.Raw("pagination[limit]", strconv.Itoa(limit))
}

// Filter appends filters[path...][op]=value with value escaped.
func (q *Query) Filter(op, value string, path ...string) *Query {
	var b strings.Builder
	b.WriteString("filters")
	for _, p := range path {
		b.WriteString("[" + p + "]")
	}
	b.WriteString("[" + op + "]")
	return q.Value(b.String(), value)
}

func (q *Query) String() string {
	return strings.Join(q.parts, "&")
}

// Endpoint joins an API path and the query.
func (q *Query) Endpoint(path string) string {
	if q == nil || len(q.parts) == 0 {
		return path
	}
	return path + "?" + q.String()
}

func escapeValue(v string) string {
	return valueUnescaper.Replace(url.QueryEscape(v))
}
