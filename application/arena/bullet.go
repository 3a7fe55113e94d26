package arena

import "codepilot/domain"

const (
	BulletSpeed   float32 = 0.5
	BulletTTL             = 40 // 射程 20 @0.5/tick
	BulletRadius  float32 = 0.3
	ActorRadius   float32 = 0.5
	ShootCooldown         = 30 // 0.5秒 @60FPS
	BulletDamage  uint8   = 20
)

// Bullet はフィールド上の弾丸を表す構造体です。
type Bullet struct {
	ID       uint16
	OwnerID  domain.ActorID
	Position domain.Position2D
	Velocity domain.Position2D // VX, VY
	TTL      int
}

// HitEvent は弾丸がアクターに命中したイベントを表します。
type HitEvent struct {
	BulletID   uint16
	VictimID   domain.ActorID
	AttackerID domain.ActorID
	Destroyed  bool
}

// stepBullets は弾丸を1tick進め、命中判定を行います。
// 命中・寿命切れ・場外の弾丸は取り除かれます。
func (f *Field) stepBullets(bullets []*Bullet) ([]*Bullet, []HitEvent) {
	const hitDist = BulletRadius + ActorRadius

	alive := bullets[:0]
	var hits []HitEvent
	for _, b := range bullets {
		b.Position = b.Position.Add(b.Velocity)
		b.TTL--
		if b.TTL <= 0 || !f.contains(b.Position) {
			continue
		}

		hit := false
		for _, actor := range f.GetAllActors() {
			if actor.ID == b.OwnerID || !actor.IsAlive() {
				continue
			}
			d := actor.Position.Sub(b.Position)
			if d.Dot(d) > hitDist*hitDist {
				continue
			}
			hits = append(hits, HitEvent{
				BulletID:   b.ID,
				VictimID:   actor.ID,
				AttackerID: b.OwnerID,
				Destroyed:  f.DamageActor(actor.ID, BulletDamage),
			})
			hit = true
			break
		}
		if !hit {
			alive = append(alive, b)
		}
	}
	return alive, hits
}

func (f *Field) contains(p domain.Position2D) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}
