package physics

import "math"

// Vector2d is an immutable 2D vector. Every method returns a new value and
// leaves both the receiver and its argument untouched.
type Vector2d struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewVector2d(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

// Zero returns the (0, 0) vector.
func Zero() Vector2d {
	return Vector2d{}
}

func (v Vector2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector2d) Distance(o Vector2d) float64 {
	return v.Sub(o).Length()
}

// Angle returns atan2(X, Y), i.e. the angle measured from the Y axis.
// The argument order is intentional and must not be swapped.
func (v Vector2d) Angle() float64 {
	return math.Atan2(v.X, v.Y)
}

// Normalize divides the vector by its length. A zero-length vector yields
// NaN components; use SafeNormalize where the length may vanish.
func (v Vector2d) Normalize() Vector2d {
	return v.Div(v.Length())
}

// SafeNormalize returns the unit vector, or Zero when the vector is near zero.
func (v Vector2d) SafeNormalize() Vector2d {
	if v.IsNearZero() {
		return Zero()
	}
	return v.Normalize()
}

func (v Vector2d) Mult(s float64) Vector2d {
	return Vector2d{X: v.X * s, Y: v.Y * s}
}

func (v Vector2d) Div(s float64) Vector2d {
	return Vector2d{X: v.X / s, Y: v.Y / s}
}

func (v Vector2d) Add(o Vector2d) Vector2d {
	return Vector2d{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2d) Sub(o Vector2d) Vector2d {
	return Vector2d{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2d) Dot(o Vector2d) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2d) Opposite() Vector2d {
	return Vector2d{X: -v.X, Y: -v.Y}
}

// Direction returns (v - o) negated, which equals o - v. The result is not
// normalized.
func (v Vector2d) Direction(o Vector2d) Vector2d {
	return v.Sub(o).Opposite()
}

func (v Vector2d) IsNearZero() bool {
	return v.Length() < NearZero
}

func (v Vector2d) Clone() Vector2d {
	return Vector2d{X: v.X, Y: v.Y}
}
