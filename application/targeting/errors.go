package targeting

import "errors"

var (
	// ErrUndefinedDirection は敵がプレイヤーと同一座標にあり、方向が定義できない場合に返されるエラーです。
	ErrUndefinedDirection = errors.New("targeting: enemy coincides with player position")
	// ErrMalformedInput は入力タプルの要素不足、または有限でない座標を含む場合に返されるエラーです。
	ErrMalformedInput = errors.New("targeting: malformed input")
	// ErrNonUnitHeading はプレイヤーの向きが単位ベクトルでない場合に返されるエラーです。
	ErrNonUnitHeading = errors.New("targeting: heading is not a unit vector")
	// ErrInvalidConfig は閾値の設定が不正な場合に返されるエラーです。
	ErrInvalidConfig = errors.New("targeting: invalid config")
)
