// internal/network/protocol.go
package network

import (
	"encoding/json"
	"fmt"

	"merge-towers/internal/event"
	"merge-towers/internal/interfaces"
)

// Типы сообщений. Входящие приходят от сервера матча, исходящие отправляет клиент.
const (
	MsgGameTime   = "game_time"
	MsgDifficulty = "difficulty"

	MsgEnemyDamage     = "enemy_damage"
	MsgEnemyKilled     = "enemy_killed"
	MsgBarrierBreached = "barrier_breached"
	MsgTowerMerged     = "tower_merged"
	MsgGameOver        = "game_over"
)

// Message — JSON-сообщение в обе стороны.
type Message struct {
	Type   string `json:"type"`
	GameID string `json:"game_id,omitempty"`

	Seconds    *float64 `json:"seconds,omitempty"`
	Multiplier *float64 `json:"multiplier,omitempty"`

	EnemyID uint64 `json:"enemy_id,omitempty"`
	TowerID uint64 `json:"tower_id,omitempty"`
	Lane    int    `json:"lane,omitempty"`
	Damage  int    `json:"damage,omitempty"`
	Health  int    `json:"health,omitempty"`
	Level   int    `json:"level,omitempty"`
	Score   int    `json:"score,omitempty"`
}

// Decode разбирает входящее сообщение.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("decode message: missing type")
	}
	return msg, nil
}

// ApplyInbound передаёт значения часов из сообщения сервера в sink.
func ApplyInbound(msg Message, sink interfaces.ClockSink) error {
	switch msg.Type {
	case MsgGameTime:
		if msg.Seconds == nil {
			return fmt.Errorf("%s: missing seconds", msg.Type)
		}
		sink.SetGameTime(*msg.Seconds)
	case MsgDifficulty:
		if msg.Multiplier == nil {
			return fmt.Errorf("%s: missing multiplier", msg.Type)
		}
		sink.SetDifficultyMultiplier(*msg.Multiplier)
	default:
		return fmt.Errorf("unexpected message type %q", msg.Type)
	}
	return nil
}

// FromEvent переводит событие матча в исходящее сообщение.
// ok == false для событий, которые сервер не интересуют.
func FromEvent(gameID string, e event.Event) (Message, bool) {
	msg := Message{GameID: gameID}
	switch data := e.Data.(type) {
	case event.EnemyData:
		switch e.Type {
		case event.EnemyDamaged:
			msg.Type = MsgEnemyDamage
		case event.EnemyKilled:
			msg.Type = MsgEnemyKilled
		default:
			return Message{}, false
		}
		msg.EnemyID = uint64(data.ID)
		msg.Lane = data.Lane
		msg.Damage = data.Damage
		msg.Health = data.Health
	case event.BreachData:
		msg.Type = MsgBarrierBreached
		msg.EnemyID = uint64(data.EnemyID)
		msg.Lane = data.Lane
		msg.Health = data.BarrierHealth
	case event.MergeData:
		msg.Type = MsgTowerMerged
		msg.TowerID = uint64(data.ResultID)
		msg.Level = data.Level
	case event.GameOverData:
		msg.Type = MsgGameOver
		msg.Score = data.FinalScore
		seconds := data.Elapsed
		msg.Seconds = &seconds
	default:
		return Message{}, false
	}
	return msg, true
}
