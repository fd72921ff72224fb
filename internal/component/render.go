// component/render.go
package component

import "image/color"

// Renderable — данные для отрисовки, ядро симуляции их не читает
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
	Label     string // Например "Lvl 2" под башней
}
