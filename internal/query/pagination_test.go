package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults when absent", "", "", 1, 20},
		{"plain values", "3", "40", 3, 40},
		{"garbage falls back", "abc", "xyz", 1, 20},
		{"zero falls back", "0", "0", 1, 20},
		{"negative page clamps to 1", "-5", "10", 1, 10},
		{"negative limit clamps to 1", "2", "-10", 2, 1},
		{"limit capped at max", "1", "5000", 1, 100},
		{"surrounding whitespace", " 2 ", " 30 ", 2, 30},
		{"float input falls back", "1.5", "2.5", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := ParsePagination(tt.page, tt.limit, AssessmentDefaultLimit, AssessmentMaxLimit)
			assert.Equal(t, tt.wantPage, pg.Page)
			assert.Equal(t, tt.wantLimit, pg.Limit)
		})
	}
}

func TestParsePaginationSubmissionBounds(t *testing.T) {
	pg := ParsePagination("", "", SubmissionDefaultLimit, SubmissionMaxLimit)
	assert.Equal(t, 50, pg.Limit)

	pg = ParsePagination("", "999", SubmissionDefaultLimit, SubmissionMaxLimit)
	assert.Equal(t, 200, pg.Limit)
}

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, int64(0), Pagination{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, int64(20), Pagination{Page: 2, Limit: 20}.Skip())
	assert.Equal(t, int64(580), Pagination{Page: 30, Limit: 20}.Skip())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(1), TotalPages(0, 20), "empty result still reports one page")
	assert.Equal(t, int64(1), TotalPages(20, 20))
	assert.Equal(t, int64(2), TotalPages(21, 20))
	assert.Equal(t, int64(5), TotalPages(100, 20))
	assert.Equal(t, int64(1), TotalPages(1, 200))
}
