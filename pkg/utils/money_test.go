package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{0.01, 1},
		{4.35, 435}, // binary float is 4.3499..., plain truncation loses a cent
		{8.20, 820},
		{57.50, 5750},
		{149.90, 14990},
		{1234.56, 123456},
		{-4.35, -435},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToCents(tc.amount), "amount %v", tc.amount)
	}
}
