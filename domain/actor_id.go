package domain

import "github.com/google/uuid"

// ActorID はアリーナ上のアクターを一意に識別します。
type ActorID uuid.UUID

func NewActorID() ActorID {
	return ActorID(uuid.New())
}

// ParseActorID は文字列表現からIDを復元します。
func ParseActorID(s string) (ActorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ActorID{}, err
	}
	return ActorID(id), nil
}

func (id ActorID) String() string {
	return uuid.UUID(id).String()
}

func (id ActorID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}
