// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пикселей в секунду вниз по дорожке)
type Velocity struct {
	Speed float64
}
