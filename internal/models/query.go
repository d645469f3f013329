package models

import (
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListQuery is the store-level shape every listing endpoint reduces to:
// a filter, an optional sort, and a skip/limit window. Counts are taken on
// Filter alone, never on the window, so pagination UIs see the full total.
type ListQuery struct {
	Filter bson.M
	Sort   bson.D
	Skip   int64
	Limit  int64
	Page   int
	Size   int
}

// Pagination defaults. The skills listing is zero-based with a page size of
// five; the owner-scoped listings are one-based with a limit of ten. The
// split is intentional and matches the public API contract per endpoint.
const (
	SkillsDefaultPage  = 0
	SkillsDefaultSize  = 5
	ScopedDefaultPage  = 1
	ScopedDefaultLimit = 10
)

// RegexFilter matches documents whose field contains term as a
// case-insensitive substring. The term is quoted so regex metacharacters
// coming off the query string match literally.
func RegexFilter(field, term string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}}
}

// SkillListQuery builds the window for the public skills listing: optional
// category search, zero-based page, optional newest-first ordering.
func SkillListQuery(search, page, size string, sortByDate bool) ListQuery {
	p := parseIntDefault(page, SkillsDefaultPage, 0)
	s := parseIntDefault(size, SkillsDefaultSize, 1)

	filter := bson.M{}
	if search != "" {
		filter = RegexFilter("category", search)
	}

	q := ListQuery{
		Filter: filter,
		Skip:   int64(p) * int64(s),
		Limit:  int64(s),
		Page:   p,
		Size:   s,
	}
	if sortByDate {
		q.Sort = bson.D{{Key: "createdAt", Value: -1}}
	}
	return q
}

// ScopedListQuery builds the window for owner-scoped listings (saved
// skills, exchanges, users). Page is one-based: skip = (page-1) * limit.
// An empty scopeField yields an unscoped search (the users listing).
func ScopedListQuery(scopeField, scopeValue, searchField, search, page, limit string) ListQuery {
	p := parseIntDefault(page, ScopedDefaultPage, 1)
	l := parseIntDefault(limit, ScopedDefaultLimit, 1)

	filter := bson.M{}
	if scopeField != "" {
		filter[scopeField] = scopeValue
	}
	if search != "" {
		for k, v := range RegexFilter(searchField, search) {
			filter[k] = v
		}
	}

	return ListQuery{
		Filter: filter,
		Skip:   int64(p-1) * int64(l),
		Limit:  int64(l),
		Page:   p,
		Size:   l,
	}
}

// parseIntDefault falls back to def when s is absent, non-numeric, or
// below min, mirroring how the API has always treated junk paging input.
func parseIntDefault(s string, def, min int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < min {
		return def
	}
	return n
}
