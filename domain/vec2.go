package domain

import (
	"errors"
	"math"
)

// Vec2 は判定計算用の倍精度ベクトルです。外部入力のタプルはこの精度で扱います。
type Vec2 struct {
	X, Y float64
}

var ErrInvalidVec2Data = errors.New("invalid vec2 data: expected at least 2 components")

// ParseVec2 はタプル [x, y, ...] から座標を取り出します。余剰要素は無視します。
func ParseVec2(data []float64) (Vec2, error) {
	if len(data) < Position2DComponents {
		return Vec2{}, ErrInvalidVec2Data
	}
	return Vec2{X: data[0], Y: data[1]}, nil
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize は単位ベクトルを返します。長さ0のときは ok=false です。
// 非正規化数でも長さが丸めで潰れないよう、最大成分で割ってから正規化します。
func (v Vec2) Normalize() (Vec2, bool) {
	m := math.Max(math.Abs(v.X), math.Abs(v.Y))
	if m == 0 {
		return Vec2{}, false
	}
	s := Vec2{X: v.X / m, Y: v.Y / m}
	l := math.Hypot(s.X, s.Y)
	return Vec2{X: s.X / l, Y: s.Y / l}, true
}

// Vec2 は倍精度ベクトルに変換します。
func (p Position2D) Vec2() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}
