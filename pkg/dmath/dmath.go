// Package dmath provides degree-based trigonometry and angle/hour
// normalization helpers shared by the astronomical calculations.
package dmath

import "math"

// DegToRad converts an angle from degrees to radians for trigonometric calculations
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// RadToDeg converts an angle from radians to degrees for human-readable output
func RadToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// Sin returns the sine of an angle given in degrees
func Sin(deg float64) float64 { return math.Sin(DegToRad(deg)) }

// Cos returns the cosine of an angle given in degrees
func Cos(deg float64) float64 { return math.Cos(DegToRad(deg)) }

// Tan returns the tangent of an angle given in degrees
func Tan(deg float64) float64 { return math.Tan(DegToRad(deg)) }

// ArcSin returns the inverse sine in degrees
func ArcSin(x float64) float64 { return RadToDeg(math.Asin(x)) }

// ArcCos returns the inverse cosine in degrees. Inputs outside [-1, 1]
// yield NaN, which callers propagate rather than guard against.
func ArcCos(x float64) float64 { return RadToDeg(math.Acos(x)) }

// ArcTan returns the inverse tangent in degrees
func ArcTan(x float64) float64 { return RadToDeg(math.Atan(x)) }

// ArcCot returns the inverse cotangent in degrees
func ArcCot(x float64) float64 { return RadToDeg(math.Atan(1 / x)) }

// ArcTan2 returns the two-argument inverse tangent in degrees
func ArcTan2(y, x float64) float64 { return RadToDeg(math.Atan2(y, x)) }

// Fix wraps a into the range [0, b)
func Fix(a, b float64) float64 {
	a = a - b*math.Floor(a/b)
	if a < 0 {
		return a + b
	}
	return a
}

// FixAngle normalizes an angle to the range [0, 360) degrees
func FixAngle(a float64) float64 { return Fix(a, 360) }

// FixHour normalizes an hour-of-day value to the range [0, 24)
func FixHour(h float64) float64 { return Fix(h, 24) }
