package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MeleeData ties an entity to its combo machine and weapon. Hitbox is the
// weapon collider; it is kept in front of the body along the facing
// direction and only checked while Weapon is active.
type MeleeData struct {
	Combo  *combat.Combo
	Weapon *combat.HitResolver
	Hitbox *resolv.Object
	Reach  float64
}

var Melee = donburi.NewComponentType[MeleeData]()
