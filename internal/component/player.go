package component

// PlayerState — общий изменяемый контекст матча: деньги, очки и здоровье барьера.
type PlayerState struct {
	Money         int
	Score         int
	Kills         int
	BarrierHealth int // 0..100, общий для всех сегментов
	Breaches      int
	GameOver      bool
}
