package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Basics(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 3)

	assert.Equal(t, V3(5, 8, 6), a.Add(b))
	assert.Equal(t, V3(3, 4, 0), b.Sub(a))
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, 3.0, HorizontalDistance(V3(0, 10, 0), V3(3, -4, 0)))
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1.0, V3(3, 4, 12).Normalize().Len(), 1e-12)
}

func TestCountDownNeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, CountDown(0.1, 0.5))
	assert.Equal(t, 0.0, CountDown(0.5, 0.5))
	assert.InDelta(t, 0.25, CountDown(0.5, 0.25), 1e-12)
}

func TestDecayTowardShrinksMagnitude(t *testing.T) {
	v := V3(6, 0, 0)
	next := DecayToward(v, 5, 1.0/60)
	assert.Less(t, next.Len(), v.Len())
	assert.Equal(t, Vec3{}, DecayToward(v, 5, 1))
}

func TestBeatInterval(t *testing.T) {
	assert.Equal(t, 2.0, BeatInterval(30))
	assert.InDelta(t, 60.0/35, BeatInterval(35), 1e-12)
	assert.Equal(t, 0.0, BeatInterval(0))
}

func TestJumpVelocity(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2*2*9.81), JumpVelocity(2, -9.81), 1e-9)
	assert.Equal(t, 0.0, JumpVelocity(2, 1))
}

func TestYawRoundTrip(t *testing.T) {
	for _, dir := range []Vec3{V3(1, 0, 0), V3(0, 0, -1), V3(-1, 0, 1)} {
		f := Forward(YawTowards(dir))
		assert.InDelta(t, 0, HorizontalDistance(f, dir.Normalize()), 1e-9)
	}
}

func TestSlerpYawTakesShortestArc(t *testing.T) {
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	half := SlerpYaw(from, to, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(half), 1e-9)
	assert.InDelta(t, to, SlerpYaw(from, to, 1), 1e-9)
	assert.InDelta(t, from, SlerpYaw(from, to, 0), 1e-9)
}
