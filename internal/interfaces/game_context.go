// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что нужно циклу кадров от матча.
type GameContext interface {
	ClockSink
	Tick(dt float64)
	IsOver() bool
	MatchID() string
}
