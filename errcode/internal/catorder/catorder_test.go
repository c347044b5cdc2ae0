package catorder_test

import (
	"testing"

	"codeberg.org/mutker/errcode/errcode/internal/catorder"
	"github.com/stretchr/testify/assert"
)

type cat struct{ name string }

func TestCompare(t *testing.T) {
	a := &cat{name: "app"}
	b := &cat{name: "app"}
	z := &cat{name: "zone"}

	assert.Zero(t, catorder.Compare(a, a, a.name, a.name))
	assert.Negative(t, catorder.Compare(a, z, a.name, z.name))
	assert.Positive(t, catorder.Compare(z, a, z.name, a.name))

	ab := catorder.Compare(a, b, a.name, b.name)
	assert.NotZero(t, ab, "same name, different categories")
	assert.Equal(t, -ab, catorder.Compare(b, a, b.name, a.name))
	assert.Equal(t, ab, catorder.Compare(a, b, a.name, b.name), "stable across calls")
}

func TestOrdinal(t *testing.T) {
	a := &cat{name: "first"}
	b := &cat{name: "second"}

	na := catorder.Ordinal(a)
	nb := catorder.Ordinal(b)

	assert.Less(t, na, nb)
	assert.Equal(t, na, catorder.Ordinal(a))
}
