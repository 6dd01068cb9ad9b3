package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name       string
		in         Page
		wantNumber int
		wantLimit  int
	}{
		{"zero values", Page{}, 1, DefaultPageLimit},
		{"limit capped", Page{Number: 2, Limit: 500}, 2, MaxPageLimit},
		{"huge page capped", Page{Number: math.MaxInt, Limit: MaxPageLimit}, MaxPageNumber, MaxPageLimit},
		{"negative page", Page{Number: -3, Limit: 5}, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize(DefaultPageLimit)
			assert.Equal(t, tt.wantNumber, got.Number)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.GreaterOrEqual(t, got.Offset(), 0)
		})
	}
}

func TestPageResult_HasNext(t *testing.T) {
	page := Page{Number: 2, Limit: 10}
	assert.True(t, PageResult[int]{Count: 25, Items: make([]int, 10)}.HasNext(page))
	assert.False(t, PageResult[int]{Count: 20, Items: make([]int, 10)}.HasNext(page))
}
