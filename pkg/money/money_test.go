package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := map[int64]string{
		0:      "0.00",
		5:      "0.05",
		1999:   "19.99",
		250000: "2500.00",
		-1250:  "-12.50",
	}
	for cents, want := range cases {
		assert.Equal(t, want, Format(cents))
	}
}
