package arena

import (
	"context"
	"log/slog"

	"codepilot/domain"
)

// DefaultMoveSpeed は1tickあたりの移動量です。
const DefaultMoveSpeed float32 = 0.1

// ArenaApplication はフィールドと各機体のコントローラを持ち、tick単位でシミュレーションを進めます。
type ArenaApplication struct {
	field        *Field
	controllers  map[domain.ActorID]BotController
	bullets      []*Bullet
	nextBulletID uint16
	tick         uint64
	moveSpeed    float32
}

// TickReport は1tickの結果です。
type TickReport struct {
	Tick  uint64
	Shots int
	Hits  []HitEvent
}

func NewArenaApplication(field *Field) *ArenaApplication {
	return &ArenaApplication{
		field:       field,
		controllers: make(map[domain.ActorID]BotController),
		moveSpeed:   DefaultMoveSpeed,
	}
}

// AddActor はアクターを生成し、コントローラを割り当てます。
func (app *ArenaApplication) AddActor(kind ActorState, pos domain.Position2D, controller BotController) *Actor {
	actor := app.field.Spawn(domain.NewActorID(), kind, pos)
	if controller != nil {
		app.controllers[actor.ID] = controller
	}
	return actor
}

func (app *ArenaApplication) Field() *Field { return app.field }

func (app *ArenaApplication) Bullets() []*Bullet { return app.bullets }

func (app *ArenaApplication) Tick(ctx context.Context) TickReport {
	app.tick++
	report := TickReport{Tick: app.tick}

	// 全機体が同じスナップショットを見て判断する
	actors := app.field.GetAllActors()
	actions := make(map[domain.ActorID]BotAction, len(actors))
	for _, actor := range actors {
		controller, ok := app.controllers[actor.ID]
		if !ok || !actor.IsAlive() {
			continue
		}
		actions[actor.ID] = controller.Decide(ctx, actor, actors, app.bullets)
	}

	for _, actor := range actors {
		if actor.ShootCooldown > 0 {
			actor.ShootCooldown--
		}
		action, ok := actions[actor.ID]
		if !ok {
			continue
		}
		app.applyAction(ctx, actor, action, &report)
	}

	var hits []HitEvent
	app.bullets, hits = app.field.stepBullets(app.bullets)
	report.Hits = hits
	for _, h := range hits {
		slog.DebugContext(ctx, "hit",
			"tick", app.tick,
			"attacker", h.AttackerID,
			"victim", h.VictimID,
			"destroyed", h.Destroyed,
		)
	}

	app.field.TickRespawns()
	return report
}

func (app *ArenaApplication) applyAction(ctx context.Context, actor *Actor, action BotAction, report *TickReport) {
	if action.Turn != 0 {
		if h, ok := actor.Heading.Rotate(action.Turn).Normalize(); ok {
			actor.Heading = h
		}
	}

	if dir, ok := action.MoveDirection.Normalize(); ok {
		step := dir.Scale(app.moveSpeed)
		app.field.ActorMove(ctx, actor.ID, step.X, step.Y)
	}

	if !action.Fire || actor.ShootCooldown > 0 {
		return
	}
	app.nextBulletID++
	app.bullets = append(app.bullets, &Bullet{
		ID:       app.nextBulletID,
		OwnerID:  actor.ID,
		Position: actor.Position,
		Velocity: actor.Heading.Scale(BulletSpeed),
		TTL:      BulletTTL,
	})
	actor.ShootCooldown = ShootCooldown
	report.Shots++
	slog.DebugContext(ctx, "fire", "tick", app.tick, "actorID", actor.ID, "heading", actor.Heading)
}
