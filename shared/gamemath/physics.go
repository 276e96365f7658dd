package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CountDown subtracts dt from a timer without going below zero.
func CountDown(remaining, dt float64) float64 {
	if remaining <= dt {
		return 0
	}
	return remaining - dt
}

// DecayToward moves v toward zero by interpolating rate*dt of the way each
// call.
func DecayToward(v Vec3, rate, dt float64) Vec3 {
	t := Clamp(rate*dt, 0, 1)
	return v.Scale(1 - t)
}

// BeatInterval converts beats per minute to seconds between beats.
func BeatInterval(bpm float64) float64 {
	if bpm <= 0 {
		return 0
	}
	return 60 / bpm
}

// JumpVelocity returns the launch speed that reaches height under gravity
// (gravity is negative).
func JumpVelocity(height, gravity float64) float64 {
	if height <= 0 || gravity >= 0 {
		return 0
	}
	return math.Sqrt(height * -2 * gravity)
}

// YawTowards returns the heading that faces along dir on the ground plane.
// A yaw of 0 faces +Z.
func YawTowards(dir Vec3) float64 {
	return math.Atan2(dir.X, dir.Z)
}

// Forward returns the unit ground-plane vector for a heading.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// SlerpYaw turns current toward target by fraction t along the shortest arc.
func SlerpYaw(current, target, t float64) float64 {
	t = Clamp(t, 0, 1)
	return WrapAngle(current + WrapAngle(target-current)*t)
}

// WrapAngle maps an angle into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
