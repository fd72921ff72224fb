// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"merge-towers/internal/config"
	"merge-towers/internal/entity"
	"merge-towers/internal/system"
	"merge-towers/pkg/lanemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FieldRenderer рисует поле и сущности. Состояние матча только читается.
type FieldRenderer struct {
	ecs      *entity.ECS
	colors   FieldColors
	health   HealthColors
	fontFace font.Face
	effects  *system.VisualEffectSystem

	hoverX, hoverY float64
}

func NewFieldRenderer(ecs *entity.ECS) *FieldRenderer {
	return &FieldRenderer{
		ecs: ecs,
		colors: FieldColors{
			BackgroundColor: config.BackgroundColor,
			LaneLineColor:   config.LaneLineColor,
			SlotColor:       config.SlotColor,
			BarrierColor:    config.BarrierColor,
			TextLightColor:  config.TextLightColor,
			StrokeWidth:     2,
		},
		health: HealthColors{
			High: config.HealthHighColor,
			Mid:  config.HealthMidColor,
			Low:  config.HealthLowColor,
		},
		fontFace: basicfont.Face7x13,
		hoverX:   -1,
		hoverY:   -1,
	}
}

// SetEffects подключает вспышки и кольца. Без них рисуется только состояние матча.
func (r *FieldRenderer) SetEffects(effects *system.VisualEffectSystem) {
	r.effects = effects
}

// SetHover запоминает курсор: дорожка под ним подсвечивается.
func (r *FieldRenderer) SetHover(x, y float64) {
	r.hoverX, r.hoverY = x, y
}

// hoverLane — дорожка под курсором, если курсор над полем выше барьера.
func (r *FieldRenderer) hoverLane(field *lanemap.Field) (int, bool) {
	if r.hoverY < 0 || r.hoverY >= field.BarrierY() {
		return 0, false
	}
	return field.LaneAt(r.hoverX)
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, field *lanemap.Field) {
	screen.Fill(r.colors.BackgroundColor)
	r.drawField(screen, field)
	r.drawTowers(screen, false)
	r.drawEnemies(screen)
	r.drawProjectiles(screen)
	r.drawRings(screen)
	// Поднятая башня поверх всего остального
	r.drawTowers(screen, true)
}

func (r *FieldRenderer) drawField(screen *ebiten.Image, field *lanemap.Field) {
	h := float32(field.BarrierY())
	if lane, ok := r.hoverLane(field); ok {
		w := float32(field.LaneWidth())
		vector.DrawFilledRect(screen, w*float32(lane), 0, w, h, WithAlpha(r.colors.LaneLineColor, 24), false)
	}
	for lane := 1; lane < field.Lanes; lane++ {
		x := float32(field.LaneWidth() * float64(lane))
		vector.StrokeLine(screen, x, 0, x, h, 1, r.colors.LaneLineColor, true)
	}
	for _, slot := range field.Slots() {
		vector.StrokeCircle(screen, float32(slot.X), float32(slot.Y), config.TowerRadius+4, 1, r.colors.SlotColor, true)
	}

	barrier := r.colors.BarrierColor
	if p := r.ecs.Player; p != nil {
		barrier = Lerp(DarkenColor(barrier), barrier, float64(p.BarrierHealth)/config.BarrierMaxHealth)
	}
	vector.DrawFilledRect(screen, 0, h, float32(field.Width), 6, barrier, true)
}

func (r *FieldRenderer) drawTowers(screen *ebiten.Image, dragging bool) {
	for _, id := range r.ecs.TowerIDs() {
		tower := r.ecs.Towers[id]
		if tower.Dragging != dragging {
			continue
		}
		pos, ok := r.ecs.Positions[id]
		rend, hasRend := r.ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		fill := LevelTint(rend.Color, tower.Level)

		if tower.Dragging {
			// Призрак на исходном слоте
			vector.StrokeCircle(screen, float32(tower.OriginX), float32(tower.OriginY), rend.Radius, 1, WithAlpha(fill, 120), true)
			fill = WithAlpha(fill, 200)
		}
		if rend.HasStroke {
			vector.DrawFilledCircle(screen, x, y, rend.Radius+r.colors.StrokeWidth, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, fill, true)

		if rend.Label != "" {
			bounds := text.BoundString(r.fontFace, rend.Label)
			text.Draw(screen, rend.Label, r.fontFace, int(x)-bounds.Dx()/2, int(y+rend.Radius)+14, r.colors.TextLightColor)
		}
	}
}

func (r *FieldRenderer) drawEnemies(screen *ebiten.Image) {
	for _, id := range r.ecs.EnemyIDs() {
		pos, ok := r.ecs.Positions[id]
		rend, hasRend := r.ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		fill := rend.Color
		if r.effects != nil && r.effects.Flashing(id) {
			fill = color.RGBA{255, 255, 255, 255}
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, fill, true)

		health, ok := r.ecs.Healths[id]
		if !ok || health.Max <= 0 {
			continue
		}
		ratio := float64(health.Value) / float64(health.Max)
		barW := rend.Radius * 2
		barY := y - rend.Radius - 8
		vector.DrawFilledRect(screen, x-rend.Radius, barY, barW, 4, color.RGBA{40, 40, 40, 200}, true)
		vector.DrawFilledRect(screen, x-rend.Radius, barY, barW*float32(ratio), 4, r.health.HealthColor(ratio), true)
	}
}

func (r *FieldRenderer) drawProjectiles(screen *ebiten.Image) {
	for _, id := range r.ecs.ProjectileIDs() {
		pos, ok := r.ecs.Positions[id]
		rend, hasRend := r.ecs.Renderables[id]
		if !ok || !hasRend {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), rend.Radius, rend.Color, true)
	}
}

func (r *FieldRenderer) drawRings(screen *ebiten.Image) {
	if r.effects == nil {
		return
	}
	for _, ring := range r.effects.Rings() {
		t := ring.Progress()
		c := WithAlpha(ring.Color, uint8(255*(1-t)))
		vector.StrokeCircle(screen, float32(ring.X), float32(ring.Y), float32(ring.MaxRadius*t)+1, 2, c, true)
	}
}
