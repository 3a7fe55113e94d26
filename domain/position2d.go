package domain

import (
	"errors"
	"math"
)

// Position2DComponents はタプル表現の最小要素数です。
const Position2DComponents = 2

type Position2D struct {
	X, Y float32
}

var ErrInvalidPosition2DData = errors.New("invalid position2d data: expected at least 2 components")

// ParsePosition2D はタプル [x, y, ...] から座標を取り出します。余剰要素は無視します。
func ParsePosition2D(data []float32) (Position2D, error) {
	if len(data) < Position2DComponents {
		return Position2D{}, ErrInvalidPosition2DData
	}
	return Position2D{X: data[0], Y: data[1]}, nil
}

func (p Position2D) Sub(o Position2D) Position2D {
	return Position2D{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Position2D) Add(o Position2D) Position2D {
	return Position2D{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position2D) Scale(s float32) Position2D {
	return Position2D{X: p.X * s, Y: p.Y * s}
}

func (p Position2D) Dot(o Position2D) float32 {
	return p.X*o.X + p.Y*o.Y
}

// Len はベクトルの長さを返します。
func (p Position2D) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Normalize は単位ベクトルを返します。長さ0のときは ok=false です。
func (p Position2D) Normalize() (Position2D, bool) {
	n, ok := p.Vec2().Normalize()
	if !ok {
		return Position2D{}, false
	}
	return Position2D{X: float32(n.X), Y: float32(n.Y)}, true
}

// Rotate は原点まわりに rad だけ回転させます。
func (p Position2D) Rotate(rad float64) Position2D {
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))
	return Position2D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Cross は2次元の外積 (z成分) を返します。正なら o は p の反時計回り側です。
func (p Position2D) Cross(o Position2D) float32 {
	return p.X*o.Y - p.Y*o.X
}
