package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsAndClamping(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero values fall back to defaults", 0, 0, 1, 10},
		{"negative values fall back to defaults", -3, -1, 1, 10},
		{"valid values pass through", 4, 25, 4, 25},
		{"limit above the cap is clamped", 1, 500, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, New(1, 10).Offset())
	assert.Equal(t, 20, New(3, 10).Offset())
	assert.Equal(t, 75, New(4, 25).Offset())
}

func TestSummarizeTwentyFiveRecords(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		summary Summary
	}{
		{
			name: "page 1 of 25 records",
			page: 1,
			summary: Summary{
				CurrentPage:  1,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      true,
				HasPrev:      false,
			},
		},
		{
			name: "page 2 of 25 records",
			page: 2,
			summary: Summary{
				CurrentPage:  2,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      true,
				HasPrev:      true,
			},
		},
		{
			name: "page 3 of 25 records",
			page: 3,
			summary: Summary{
				CurrentPage:  3,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      false,
				HasPrev:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.page, 10).Summarize(25)
			assert.Equal(t, tt.summary, got)
		})
	}
}

func TestSummarizeEdges(t *testing.T) {
	assert.Equal(t, Summary{
		CurrentPage:  1,
		TotalPages:   0,
		TotalRecords: 0,
		HasNext:      false,
		HasPrev:      false,
	}, New(1, 10).Summarize(0))

	// exact multiple: 30 records, limit 10
	got := New(3, 10).Summarize(30)
	assert.Equal(t, 3, got.TotalPages)
	assert.False(t, got.HasNext)
}
