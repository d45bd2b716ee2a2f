package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("duplicate entry")
	err := fmt.Errorf("create user: %w", Wrap(Conflict, cause, "email already registered"))

	assert.Equal(t, Conflict, KindOf(err))
	assert.True(t, Is(err, Conflict))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
}

func TestWithDetails(t *testing.T) {
	err := New(ReferentialConflict, "category has products").With("productCount", 3)

	assert.Equal(t, 3, err.Details["productCount"])
	assert.Equal(t, "category has products", err.Error())
	assert.Equal(t, "referential_conflict", err.Kind.String())
}
