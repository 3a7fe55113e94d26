package arena

import (
	"context"

	"codepilot/domain"
)

//go:generate go tool mockgen -destination=./mocks/bot_controller_mock.go -package=mocks . BotController

// BotAction は1tick分の行動を表します。
type BotAction struct {
	MoveDirection domain.Position2D
	Turn          float64 // 旋回量 (rad)。正で反時計回り
	Fire          bool
}

// BotController は機体の意思決定インターフェースです。
type BotController interface {
	Decide(ctx context.Context, self *Actor, allActors []*Actor, allBullets []*Bullet) BotAction
}
