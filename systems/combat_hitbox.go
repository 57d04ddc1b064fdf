package systems

import (
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeapons keeps each weapon collider in front of its owner and, while
// the weapon is live, reports every overlapped combatant to its resolver.
// The resolver decides who actually takes damage.
func UpdateWeapons(ecs *ecs.ECS) {
	components.Melee.Each(ecs.World, func(e *donburi.Entry) {
		melee := components.Melee.Get(e)
		if melee.Hitbox == nil {
			return
		}
		// The collider follows facing even while idle so the debug view
		// shows where the next swing lands.
		placeHitbox(e, melee)
		if Dying(e) || melee.Weapon == nil || !melee.Weapon.IsActive() {
			return
		}

		// Check reports everything sharing a cell; Overlaps narrows it to
		// real contact.
		check := melee.Hitbox.Check(0, 0, tags.ResolvCharacter)
		if check == nil {
			return
		}
		for _, obj := range check.ObjectsByTags(tags.ResolvCharacter) {
			target, ok := entryOf(obj)
			if !ok || target.Entity() == e.Entity() || !melee.Hitbox.Overlaps(obj) {
				continue
			}
			melee.Weapon.OnOverlap(components.Fighter{Entry: target})
		}
	})
}

func placeHitbox(e *donburi.Entry, melee *components.MeleeData) {
	body := components.Object.Get(e)
	facing := components.Physics.Get(e).Facing
	center := body.Center()
	hb := melee.Hitbox

	// Reach is the gap between the body edge and the weapon.
	cx := center.X + facing.X*(body.W/2+melee.Reach+hb.W/2)
	cy := center.Y + facing.Y*(body.H/2+melee.Reach+hb.H/2)
	hb.X = cx - hb.W/2
	hb.Y = cy - hb.H/2
	hb.Update()
}
