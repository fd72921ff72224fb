package interfaces

// ClockSink принимает авторитетные значения от сервера матча.
// Реализации должны быть потокобезопасны: вызовы приходят из горутины сети.
type ClockSink interface {
	SetGameTime(seconds float64)
	SetDifficultyMultiplier(multiplier float64)
}
