package current

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldWrapsGuardDeposits(t *testing.T) {
	c := New(6, 0.1)
	// deposits that spilled over both edges
	c.J.At(-1).X = 1
	c.J.At(6).Y = 2
	c.J.At(7).Z = 3
	c.J.At(5).X = 10
	c.J.At(0).Y = 20
	c.J.At(1).Z = 30

	c.Fold()

	assert.Equal(t, 11., c.J.At(5).X)
	assert.Equal(t, 22., c.J.At(0).Y)
	assert.Equal(t, 33., c.J.At(1).Z)
}

func TestSmoothSpreadsAndConserves(t *testing.T) {
	c := New(8, 0.1)
	c.J.At(4).X = 1

	c.Smooth(1)

	assert.Equal(t, 0.25, c.J.At(3).X)
	assert.Equal(t, 0.5, c.J.At(4).X)
	assert.Equal(t, 0.25, c.J.At(5).X)

	var sum float64
	for i := 0; i < 8; i++ {
		sum += c.J.At(i).X
	}
	assert.Equal(t, 1., sum)
}

func TestSmoothPeriodicEdges(t *testing.T) {
	c := New(4, 1)
	c.J.At(0).Y = 1

	c.Smooth(1)

	assert.Equal(t, 0.5, c.J.At(0).Y)
	assert.Equal(t, 0.25, c.J.At(1).Y)
	assert.Equal(t, 0.25, c.J.At(3).Y)
	assert.Equal(t, 0., c.J.At(2).Y)
}

func TestSmoothZeroPassesIsNoop(t *testing.T) {
	c := New(4, 1)
	c.J.At(2).Z = 7
	c.Smooth(0)
	assert.Equal(t, 7., c.J.At(2).Z)
}

func TestZero(t *testing.T) {
	c := New(3, 1)
	c.J.At(-1).X = 1
	c.J.At(2).Y = 2
	c.Zero()
	for i := -1; i < 5; i++ {
		assert.Equal(t, 0., c.J.At(i).X, "cell %d", i)
		assert.Equal(t, 0., c.J.At(i).Y, "cell %d", i)
	}
}
