package targeting

import (
	"fmt"

	"codepilot/domain"
)

// PlayerTupleSize はプレイヤータプル [x, y, hx, hy] の最小要素数です。
const PlayerTupleSize = 4

// PlayerState は1回の判定中に不変なプレイヤーの位置と向きです。
// Heading は単位ベクトルであることが前提です。
type PlayerState struct {
	Position domain.Vec2
	Heading  domain.Vec2
}

// ParsePlayerState はタプル [x, y, hx, hy, ...] をパースします。
// 5番目以降の要素 (向きの角度など) は無視します。
func ParsePlayerState(tuple []float64) (PlayerState, error) {
	if len(tuple) < PlayerTupleSize {
		return PlayerState{}, fmt.Errorf("%w: player tuple has %d components, want at least %d",
			ErrMalformedInput, len(tuple), PlayerTupleSize)
	}
	return PlayerState{
		Position: domain.Vec2{X: tuple[0], Y: tuple[1]},
		Heading:  domain.Vec2{X: tuple[2], Y: tuple[3]},
	}, nil
}

// ParseEnemyPositions は敵タプル列 [[x, y, ...], ...] をパースします。
func ParseEnemyPositions(tuples [][]float64) ([]domain.Vec2, error) {
	enemies := make([]domain.Vec2, 0, len(tuples))
	for i, tuple := range tuples {
		p, err := domain.ParseVec2(tuple)
		if err != nil {
			return nil, fmt.Errorf("%w: enemy[%d] has %d components, want at least %d",
				ErrMalformedInput, i, len(tuple), domain.Position2DComponents)
		}
		enemies = append(enemies, p)
	}
	return enemies, nil
}
