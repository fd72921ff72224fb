// internal/component/projectile.go
package component

import "merge-towers/internal/types"

// Projectile представляет летящий снаряд.
// TargetID — слабая ссылка: враг может исчезнуть раньше, чем снаряд долетит.
type Projectile struct {
	OwnerID  types.EntityID
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Size     float64
}
