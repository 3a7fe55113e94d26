package arena

import (
	"context"
	"log/slog"
	"math"

	"codepilot/application/targeting"
	"codepilot/domain"
)

// DefaultTurnRate は1tickあたりの最大旋回量 (rad) です。
const DefaultTurnRate = 0.05

// 最寄りの敵との距離をこの範囲に保つように前後へ推進します。
const (
	DefaultStandoffNear float32 = 3.0
	DefaultStandoffFar  float32 = 8.0
)

// PilotController はプレイヤー機の自動操縦です。
// 最寄りの敵へ旋回し、旋回後の向きで射撃判定を行います。
// 推進は向きに沿った前進か後退のみで、速さは ArenaApplication の移動速度で頭打ちになります。
type PilotController struct {
	decider  *targeting.Decider
	turnRate float64
}

func NewPilotController(decider *targeting.Decider, turnRate float64) *PilotController {
	if turnRate <= 0 {
		turnRate = DefaultTurnRate
	}
	return &PilotController{decider: decider, turnRate: turnRate}
}

func (p *PilotController) Decide(ctx context.Context, self *Actor, allActors []*Actor, _ []*Bullet) BotAction {
	var action BotAction

	nearest := findNearestEnemy(self, allActors)
	if nearest != nil {
		if dir, ok := nearest.Position.Sub(self.Position).Normalize(); ok {
			action.Turn = p.turnToward(self.Heading, dir)
		}
	}

	heading, ok := self.Heading.Rotate(action.Turn).Normalize()
	if !ok {
		return action
	}
	if nearest != nil {
		action.MoveDirection = thrust(heading, nearest.Position.Sub(self.Position).Len())
	}

	enemies := make([]domain.Vec2, 0, len(allActors))
	for _, other := range allActors {
		if other.ID == self.ID || other.Kind() == self.Kind() || !other.IsAlive() {
			continue
		}
		enemies = append(enemies, other.Position.Vec2())
	}

	fire, err := p.decider.Decide(ctx, targeting.PlayerState{
		Position: self.Position.Vec2(),
		Heading:  heading.Vec2(),
	}, enemies)
	if err != nil {
		// 判定できないtickは撃たない
		slog.WarnContext(ctx, "targeting failed, holding fire", "actorID", self.ID, "err", err)
		return action
	}
	action.Fire = fire
	return action
}

// turnToward は heading を target へ向けるための旋回量を turnRate でクランプして返します。
func (p *PilotController) turnToward(heading, target domain.Position2D) float64 {
	angle := math.Atan2(float64(heading.Cross(target)), float64(heading.Dot(target)))
	return math.Max(-p.turnRate, math.Min(p.turnRate, angle))
}

func thrust(heading domain.Position2D, dist float32) domain.Position2D {
	switch {
	case dist > DefaultStandoffFar:
		return heading
	case dist < DefaultStandoffNear:
		return heading.Scale(-1)
	default:
		return domain.Position2D{}
	}
}
