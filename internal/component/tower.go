// component/tower.go
package component

import "merge-towers/internal/defs"

type Tower struct {
	Kind  defs.TowerKind
	Level int // Уровень, начиная с 1
	Lane  int

	// Перетаскивание: пока Dragging, башня не ищет цели и не стреляет
	Dragging   bool
	OriginX    float64
	OriginY    float64
	OriginLane int
}
