package union_test

import (
	"strconv"
	"strings"
	"testing"

	"martianoff/union"

	"github.com/stretchr/testify/assert"
)

func TestMapLeft(t *testing.T) {
	t.Run("AppliesOnLeft", func(t *testing.T) {
		u := union.MapLeft(union.OfLeft[int, string](5), func(x int) int { return x + 1 })
		assert.Equal(t, 6, u.GetLeft())
	})

	t.Run("ChangesType", func(t *testing.T) {
		u := union.MapLeft(union.OfLeft[int, string](5), strconv.Itoa)
		assert.Equal(t, "5", u.GetLeft())
	})

	t.Run("PassesThroughRight", func(t *testing.T) {
		u := union.MapLeft(union.OfRight[int, string]("err"), func(x int) int { return x + 1 })
		assert.True(t, u.IsRight())
		assert.Equal(t, "err", u.GetRight())
	})

	t.Run("IdentityLaw", func(t *testing.T) {
		id := func(x int) int { return x }

		l := union.OfLeft[int, string](5)
		assert.True(t, union.MapLeft(l, id).Equal(l))

		r := union.OfRight[int, string]("err")
		assert.True(t, union.MapLeft(r, id).Equal(r))
	})
}

func TestMapRight(t *testing.T) {
	t.Run("AppliesOnRight", func(t *testing.T) {
		u := union.MapRight(union.OfRight[int, string]("err"), strings.ToUpper)
		assert.Equal(t, "ERR", u.GetRight())
	})

	t.Run("PassesThroughLeft", func(t *testing.T) {
		u := union.MapRight(union.OfLeft[int, string](5), strings.ToUpper)
		assert.True(t, u.IsLeft())
		assert.Equal(t, 5, u.GetLeft())
	})
}

func TestFlatMapLeft(t *testing.T) {
	t.Run("Flattens", func(t *testing.T) {
		u := union.FlatMapLeft(union.OfLeft[int, string](5), func(x int) union.Union[string, string] {
			return union.OfLeft[string, string](strconv.Itoa(x))
		})
		assert.Equal(t, "5", u.GetLeft())
	})

	t.Run("CanSwitchSides", func(t *testing.T) {
		u := union.FlatMapLeft(union.OfLeft[int, string](5), func(x int) union.Union[int, string] {
			return union.OfRight[int, string]("rejected")
		})
		assert.True(t, u.IsRight())
		assert.Equal(t, "rejected", u.GetRight())
	})

	t.Run("PassesThroughRight", func(t *testing.T) {
		u := union.FlatMapLeft(union.OfRight[int, string]("err"), func(x int) union.Union[int, string] {
			return union.OfLeft[int, string](x)
		})
		assert.True(t, u.IsRight())
		assert.Equal(t, "err", u.GetRight())
	})

	t.Run("TrivialWrapIsIdentity", func(t *testing.T) {
		wrap := func(x int) union.Union[int, string] { return union.OfLeft[int, string](x) }
		id := func(x int) int { return x }

		l := union.OfLeft[int, string](5)
		assert.True(t, union.FlatMapLeft(l, wrap).Equal(union.MapLeft(l, id)))

		r := union.OfRight[int, string]("err")
		assert.True(t, union.FlatMapLeft(r, wrap).Equal(union.MapLeft(r, id)))
	})
}

func TestFlatMapRight(t *testing.T) {
	t.Run("Flattens", func(t *testing.T) {
		u := union.FlatMapRight(union.OfRight[int, string]("7"), func(s string) union.Union[int, int] {
			n, _ := strconv.Atoi(s)
			return union.OfRight[int, int](n)
		})
		assert.Equal(t, 7, u.GetRight())
	})

	t.Run("PassesThroughLeft", func(t *testing.T) {
		u := union.FlatMapRight(union.OfLeft[int, string](5), func(s string) union.Union[int, string] {
			return union.OfRight[int, string](s)
		})
		assert.True(t, u.IsLeft())
		assert.Equal(t, 5, u.GetLeft())
	})
}

func TestFold(t *testing.T) {
	describeInt := func(x int) string { return "int:" + strconv.Itoa(x) }
	describeStr := func(s string) string { return "str:" + s }

	assert.Equal(t, "int:5", union.Fold(union.OfLeft[int, string](5), describeInt, describeStr))
	assert.Equal(t, "str:err", union.Fold(union.OfRight[int, string]("err"), describeInt, describeStr))
}
