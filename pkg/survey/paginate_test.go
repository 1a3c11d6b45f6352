package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, expected int
	}{
		{0, 0},
		{1, 1},
		{20, 1},
		{21, 2},
		{40, 2},
		{199, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.n, PageSize), "n=%d", tt.n)
	}
}

func TestPaginateCoversAllItems(t *testing.T) {
	for _, n := range []int{0, 1, 19, 20, 21, 39, 40, 41, 137} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		total := TotalPages(n, PageSize)
		sum := 0
		for p := 1; p <= total; p++ {
			page := Paginate(items, p, PageSize)
			start := (p - 1) * PageSize
			end := min(p*PageSize, n)
			assert.Equal(t, items[start:end], page, "n=%d page=%d", n, p)
			sum += len(page)

			if p == total {
				assert.GreaterOrEqual(t, len(page), 1)
				assert.LessOrEqual(t, len(page), PageSize)
			}
		}
		assert.Equal(t, n, sum, "n=%d", n)
	}
}

func TestPaginateOutOfRangeIsEmpty(t *testing.T) {
	items := []string{"a", "b", "c"}
	assert.Empty(t, Paginate(items, 2, PageSize))
	assert.Empty(t, Paginate(items, 0, PageSize))
	assert.Empty(t, Paginate(items, -3, PageSize))
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		expected       []int
	}{
		{"no pages", 1, 0, nil},
		{"few pages", 3, 5, []int{1, 2, 3, 4, 5}},
		{"exactly seven", 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"start", 1, 10, []int{1, 2, 3, 4, 5, Ellipsis, 10}},
		{"start edge", 4, 10, []int{1, 2, 3, 4, 5, Ellipsis, 10}},
		{"middle", 5, 10, []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{"end edge", 7, 10, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"end", 10, 10, []int{1, Ellipsis, 6, 7, 8, 9, 10}},
		{"eight pages middle", 5, 8, []int{1, Ellipsis, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageNumbers(tt.current, tt.total)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), MaxVisiblePages)
		})
	}
}
