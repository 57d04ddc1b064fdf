package systems

import (
	"github.com/automoto/doomerang-melee/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down death timers and removes expired entities from
// the world and the collision space.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	// Removing inside Each would invalidate the iteration.
	for _, e := range expired {
		removeEntity(ecs.World, e)
	}
}

func removeEntity(w donburi.World, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(w); ok {
		space := components.Space.Get(spaceEntry)
		if e.HasComponent(components.Object) {
			space.Remove(components.Object.Get(e).Object)
		}
		// The weapon collider is a separate object in the space.
		if e.HasComponent(components.Melee) {
			if hitbox := components.Melee.Get(e).Hitbox; hitbox != nil {
				space.Remove(hitbox)
			}
		}
	}
	log.Debug().Uint64("entity", uint64(e.Entity())).Msg("removed from world")
	w.Remove(e.Entity())
}
