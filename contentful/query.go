package contentful

import (
	"net/url"
	"strconv"
	"strings"
)

// Query describes a filtered, ordered read of entries of one content type.
type Query struct {
	contentType string
	equals      [][2]string
	order       []string
	limit       int
	skip        int
	include     int
	locale      string
}

// NewQuery starts a query for entries of contentType.
func NewQuery(contentType string) *Query {
	return &Query{contentType: contentType, include: -1}
}

// Equal adds a field-equality filter. field is the bare field ID; the
// "fields." prefix is added for you.
func (q *Query) Equal(field, value string) *Query {
	q.equals = append(q.equals, [2]string{fieldPath(field), value})
	return q
}

// Order sets the sort keys. Prefix a key with "-" for descending order;
// bare field IDs get the "fields." prefix.
func (q *Query) Order(keys ...string) *Query {
	q.order = q.order[:0]
	for _, k := range keys {
		desc := strings.HasPrefix(k, "-")
		k = strings.TrimPrefix(k, "-")
		k = fieldPath(k)
		if desc {
			k = "-" + k
		}
		q.order = append(q.order, k)
	}
	return q
}

// Limit caps the number of returned entries.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Skip offsets the result window.
func (q *Query) Skip(n int) *Query {
	q.skip = n
	return q
}

// Include sets the link resolution depth (0-10).
func (q *Query) Include(depth int) *Query {
	q.include = depth
	return q
}

// Locale selects the locale of returned fields.
func (q *Query) Locale(locale string) *Query {
	q.locale = locale
	return q
}

// ContentType returns the content type the query targets.
func (q *Query) ContentType() string { return q.contentType }

// Values encodes the query as URL parameters. Values.Encode sorts by key, so
// identical queries always produce identical request URLs.
func (q *Query) Values() url.Values {
	v := url.Values{}
	if q.contentType != "" {
		v.Set("content_type", q.contentType)
	}
	for _, eq := range q.equals {
		v.Add(eq[0], eq[1])
	}
	if len(q.order) > 0 {
		v.Set("order", strings.Join(q.order, ","))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.skip > 0 {
		v.Set("skip", strconv.Itoa(q.skip))
	}
	if q.include >= 0 {
		v.Set("include", strconv.Itoa(q.include))
	}
	if q.locale != "" {
		v.Set("locale", q.locale)
	}
	return v
}

func fieldPath(k string) string {
	if strings.HasPrefix(k, "fields.") || strings.HasPrefix(k, "sys.") {
		return k
	}
	return "fields." + k
}
