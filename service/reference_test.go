package service

import (
	"Couture/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashidsReference(t *testing.T) {
	gen := &HashidsReference{Salt: "couture"}

	a, err := gen.Next(EntityOrder, 42)
	require.NoError(t, err)
	b, err := gen.Next(EntityOrder, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "ORD-"))

	// 不同实体同一主键编号不同
	c, err := gen.Next(EntityProduct, 42)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c, "PRD-"))
	assert.NotEqual(t, strings.TrimPrefix(a, "ORD-"), strings.TrimPrefix(c, "PRD-"))

	_, err = gen.Next("coupon", 1)
	assert.Error(t, err)
}

func TestNewReferenceGenerator(t *testing.T) {
	conf := config.Default()
	gen, err := NewReferenceGenerator(conf)
	require.NoError(t, err)
	assert.IsType(t, &HashidsReference{}, gen)

	conf.Reference.Strategy = config.ReferenceSnowflake
	gen, err = NewReferenceGenerator(conf)
	require.NoError(t, err)
	a, err := gen.Next(EntityVariant, 1)
	require.NoError(t, err)
	b, err := gen.Next(EntityVariant, 1)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(a, "VAR-"))
	assert.NotEqual(t, a, b)

	conf.Reference.Strategy = "uuid"
	_, err = NewReferenceGenerator(conf)
	assert.Error(t, err)
}
