package query

import (
	"strconv"
	"strings"
)

// Per-collection page bounds. Submissions allow a higher ceiling because
// reporting UIs routinely pull larger batches.
const (
	AssessmentDefaultLimit = 20
	AssessmentMaxLimit     = 100
	SubmissionDefaultLimit = 50
	SubmissionMaxLimit     = 200
)

// Pagination is the normalized page window. Values are always in bounds;
// parsing garbage never errors, it falls back to defaults.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination normalizes raw page/limit input: page defaults to 1 and is
// never below 1; limit defaults per collection and is clamped to [1, max].
func ParsePagination(pageRaw, limitRaw string, defaultLimit, maxLimit int) Pagination {
	page := 1
	if v, err := strconv.Atoi(strings.TrimSpace(pageRaw)); err == nil && v != 0 {
		page = v
	}
	if page < 1 {
		page = 1
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(strings.TrimSpace(limitRaw)); err == nil && v != 0 {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages is ceil(total/limit), never below 1 even for an empty result.
func TotalPages(total int64, limit int) int64 {
	pages := (total + int64(limit) - 1) / int64(limit)
	if pages < 1 {
		pages = 1
	}
	return pages
}
