package arena

import (
	"context"
	"math"
	"math/rand/v2"

	"codepilot/domain"
)

const (
	botDangerDist float32 = 3.0  // 弾丸回避を始める距離
	botNoiseAngle float64 = 0.52 // ±30度 (π/6 ≈ 0.52 rad)
	rushChance    float64 = 0.02 // 毎tick 2% の確率で突撃
)

// RuleBotController はルールベースのドローンAIです。
// ドローンごとに異なる個性パラメータを持ちます。
type RuleBotController struct {
	CloseRange float32 // 後退を始める距離
	MidRange   float32 // ストレイフを始める距離
	StrafeSign float32 // +1: 反時計回り, -1: 時計回り

	rng *rand.Rand
}

// NewRuleBotController は rng から個性を決めたドローンAIを生成します。
func NewRuleBotController(rng *rand.Rand) *RuleBotController {
	strafeSign := float32(1.0)
	if rng.Float64() < 0.5 {
		strafeSign = -1.0
	}
	return &RuleBotController{
		CloseRange: 3.0 + rng.Float32()*4.0,   // 3〜7
		MidRange:   10.0 + rng.Float32()*10.0, // 10〜20
		StrafeSign: strafeSign,
		rng:        rng,
	}
}

func (r *RuleBotController) Decide(_ context.Context, self *Actor, allActors []*Actor, allBullets []*Bullet) BotAction {
	// 被弾回避を優先
	if dir, ok := r.evadeBullet(self, allBullets); ok {
		return BotAction{MoveDirection: r.addNoise(dir)}
	}

	// 最寄り敵に対する行動
	nearest := findNearestEnemy(self, allActors)
	if nearest == nil {
		return BotAction{}
	}

	d := nearest.Position.Sub(self.Position)
	dist := d.Len()
	if dist < 0.001 {
		return BotAction{}
	}
	n := d.Scale(1 / dist)

	// ランダム突撃: 一定確率で距離に関係なく接近
	if r.rng.Float64() < rushChance {
		return BotAction{MoveDirection: r.addNoise(n)}
	}

	var dir domain.Position2D
	switch {
	case dist < r.CloseRange:
		// 近距離: 後退
		dir = n.Scale(-1)
	case dist < r.MidRange:
		// 中距離: 横移動（ストレイフ方向はドローンごとに異なる）
		dir = domain.Position2D{X: -n.Y * r.StrafeSign, Y: n.X * r.StrafeSign}
	default:
		// 遠距離: 接近
		dir = n
	}

	return BotAction{MoveDirection: r.addNoise(dir)}
}

// evadeBullet は自分に向かってくる弾丸を回避する方向を返します。
func (r *RuleBotController) evadeBullet(self *Actor, bullets []*Bullet) (domain.Position2D, bool) {
	var closestDist float32 = math.MaxFloat32
	var closestBullet *Bullet

	for _, b := range bullets {
		if b.OwnerID == self.ID {
			continue
		}
		d := self.Position.Sub(b.Position)
		dist := d.Len()

		if dist > botDangerDist {
			continue
		}

		// 弾丸が自分に向かっているか確認（内積 > 0）
		if d.Dot(b.Velocity) <= 0 {
			continue
		}

		if dist < closestDist {
			closestDist = dist
			closestBullet = b
		}
	}

	if closestBullet == nil {
		return domain.Position2D{}, false
	}

	// 弾丸の進行方向に対して垂直に回避
	v, ok := closestBullet.Velocity.Normalize()
	if !ok {
		return domain.Position2D{}, false
	}
	return domain.Position2D{X: -v.Y, Y: v.X}, true
}

// findNearestEnemy は種別の異なる最寄りの生存アクターを探します。
func findNearestEnemy(self *Actor, allActors []*Actor) *Actor {
	var nearest *Actor
	var nearestDistSq float32 = math.MaxFloat32

	for _, other := range allActors {
		if other.ID == self.ID || other.Kind() == self.Kind() || !other.IsAlive() {
			continue
		}
		d := other.Position.Sub(self.Position)
		distSq := d.Dot(d)
		if distSq < nearestDistSq {
			nearestDistSq = distSq
			nearest = other
		}
	}
	return nearest
}

// addNoise は移動方向に ±30度 のランダムノイズを加えます。
func (r *RuleBotController) addNoise(dir domain.Position2D) domain.Position2D {
	noise := (r.rng.Float64()*2 - 1) * botNoiseAngle
	return dir.Rotate(noise)
}
