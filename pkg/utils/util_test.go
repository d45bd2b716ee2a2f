package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Oversized Hoodie":        "oversized-hoodie",
		"  Café   Crème Tee!! ":   "cafe-creme-tee",
		"Cargo Pants -- Black/XL": "cargo-pants-black-xl",
		"!!!":                     "",
		"2024 Drop #3":            "2024-drop-3",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestGenHashID(t *testing.T) {
	a, err := GenHashID("salt", 1)
	require.NoError(t, err)
	b, err := GenHashID("salt", 2)
	require.NoError(t, err)
	again, err := GenHashID("salt", 1)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(a), 12)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
}

func TestPaginate(t *testing.T) {
	page, limit, offset := Paginate(3, 20, 100)
	assert.Equal(t, []int{3, 20, 40}, []int{page, limit, offset})

	page, limit, offset = Paginate(0, 0, 50)
	assert.Equal(t, []int{1, 50, 0}, []int{page, limit, offset})

	_, limit, _ = Paginate(1, 500, 50)
	assert.Equal(t, 50, limit)
}
