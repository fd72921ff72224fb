package component

// Health — компонент здоровья, 0 <= Value <= Max
type Health struct {
	Value int
	Max   int
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage       int
	FireInterval float64 // Секунд между выстрелами
	Range        float64 // Радиус действия в пикселях
	Cooldown     float64 // Время, накопленное с последнего выстрела
}
