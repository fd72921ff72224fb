package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Lane       int
	BaseHealth int
	Multiplier float64 // Множитель сложности, зафиксированный при появлении
	Breached   bool    // Дошёл до барьера, ждёт удаления
}
