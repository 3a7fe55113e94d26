package arena

import (
	"context"
	"log/slog"

	"codepilot/domain"
)

// Field はアリーナの広さとアクターを管理する構造体です。
type Field struct {
	Width, Height float32
	Actors        map[domain.ActorID]*Actor
	order         []domain.ActorID // 生成順。tick内の処理順を決定的にする
}

// ActorState はアクターの状態と種別をビットマスクで表現します。
// bit 0-3: 状態フラグ, bit 4-7: 種別フラグ
type ActorState uint8

const (
	StateAlive      ActorState = 0x01
	StateRespawning ActorState = 0x02
	KindPilot       ActorState = 0x00
	KindDrone       ActorState = 0x10

	stateMask ActorState = 0x0F
	kindMask  ActorState = 0xF0
)

const (
	MaxHP        uint8 = 100
	RespawnTicks       = 180 // 3秒 @60FPS
)

// Actor はフィールド上の機体を表す構造体です。
type Actor struct {
	ID            domain.ActorID
	Position      domain.Position2D
	Heading       domain.Position2D // 単位ベクトル
	Spawn         domain.Position2D // リスポーン地点
	HP            uint8
	State         ActorState
	ShootCooldown int
	RespawnTimer  int
}

// NewField は指定された広さでフィールドを作成します。
func NewField(width, height float32) *Field {
	return &Field{
		Width:  width,
		Height: height,
		Actors: make(map[domain.ActorID]*Actor),
	}
}

// Center はフィールド中央の座標を返します。
func (f *Field) Center() domain.Position2D {
	return domain.Position2D{X: f.Width / 2, Y: f.Height / 2}
}

// Spawn は指定座標にアクターを生成します。向きは +X 方向で初期化されます。
func (f *Field) Spawn(id domain.ActorID, kind ActorState, pos domain.Position2D) *Actor {
	pos = f.clampPosition(pos)
	actor := &Actor{
		ID:       id,
		Position: pos,
		Heading:  domain.Position2D{X: 1, Y: 0},
		Spawn:    pos,
		HP:       MaxHP,
		State:    StateAlive | (kind & kindMask),
	}
	if _, exists := f.Actors[id]; !exists {
		f.order = append(f.order, id)
	}
	f.Actors[id] = actor
	return actor
}

// ActorMove はアクターを移動させます。境界を超えないようにクランプします。
func (f *Field) ActorMove(ctx context.Context, id domain.ActorID, dx, dy float32) {
	actor, ok := f.Actors[id]
	if !ok {
		slog.WarnContext(ctx, "actor not found", "actorID", id)
		return
	}

	actor.Position.X = clamp(actor.Position.X+dx, 0, f.Width)
	actor.Position.Y = clamp(actor.Position.Y+dy, 0, f.Height)
}

// Remove はアクターをフィールドから削除します。
func (f *Field) Remove(id domain.ActorID) {
	if _, ok := f.Actors[id]; !ok {
		return
	}
	delete(f.Actors, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// GetAllActors は全アクターを生成順で返します。
func (f *Field) GetAllActors() []*Actor {
	actors := make([]*Actor, 0, len(f.order))
	for _, id := range f.order {
		actors = append(actors, f.Actors[id])
	}
	return actors
}

// GetActor は指定されたIDのアクターを取得します。
func (f *Field) GetActor(id domain.ActorID) (*Actor, bool) {
	actor, ok := f.Actors[id]
	return actor, ok
}

// IsAlive はアクターが生存しているかを返します。
func (a *Actor) IsAlive() bool {
	return a.State&StateAlive != 0
}

// Kind はアクターの種別フラグを返します。
func (a *Actor) Kind() ActorState {
	return a.State & kindMask
}

// DamageActor はアクターにダメージを与えます。HPが0になったらRespawning状態に遷移します。
// 撃墜した場合 true を返します。
func (f *Field) DamageActor(id domain.ActorID, damage uint8) bool {
	actor, ok := f.Actors[id]
	if !ok || !actor.IsAlive() {
		return false
	}

	if damage >= actor.HP {
		actor.HP = 0
		actor.State = (actor.State &^ stateMask) | StateRespawning // 状態フラグのみ変更、種別フラグは維持
		actor.RespawnTimer = RespawnTicks
		return true
	}
	actor.HP -= damage
	return false
}

// TickRespawns はリスポーンタイマーを進め、復活処理を行います。
func (f *Field) TickRespawns() {
	for _, actor := range f.Actors {
		if actor.State&StateRespawning == 0 {
			continue
		}
		actor.RespawnTimer--
		if actor.RespawnTimer <= 0 {
			actor.HP = MaxHP
			actor.State = (actor.State &^ stateMask) | StateAlive
			actor.Position = actor.Spawn
		}
	}
}

func (f *Field) clampPosition(p domain.Position2D) domain.Position2D {
	return domain.Position2D{
		X: clamp(p.X, 0, f.Width),
		Y: clamp(p.Y, 0, f.Height),
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
