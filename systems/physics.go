package systems

import (
	"math"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// arriveDistance is how close steering gets before it stops.
const arriveDistance = 1.0

// UpdatePhysics moves bodies by their velocity. Walls stop movement per
// axis; combatants pass through each other.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if Dying(e) {
			physics.Stop()
			return
		}
		obj := components.Object.Get(e)
		if physics.Steering {
			steer(physics, obj.Center(), dt)
		}
		if dt <= 0 {
			return
		}

		// Resolve X then Y so a diagonal push slides along a wall.
		moveAxis(obj.Object, physics.Velocity.X*dt, 0)
		moveAxis(obj.Object, 0, physics.Velocity.Y*dt)
		obj.Update()
	})
}

func steer(p *components.PhysicsData, from dmath.Vec2, dt float64) {
	d := combat.Distance(from, p.Destination)
	if d <= arriveDistance {
		p.Velocity = dmath.Vec2{}
		return
	}
	dir := combat.Direction(from, p.Destination)
	speed := p.Speed
	if dt > 0 && speed*dt > d {
		speed = d / dt // don't overshoot
	}
	p.Velocity = dmath.Vec2{X: dir.X * speed, Y: dir.Y * speed}
	p.FaceToward(dir)
}

// moveAxis moves obj along one axis, stopping flush against any wall in
// the way. Walls it already overlaps do not hold it.
func moveAxis(obj *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		obj.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		// Skip walls we start inside (spawned badly) and walls that only
		// share a cell with the path.
		if penetrates(obj, 0, 0, solid) || !penetrates(obj, dx, dy, solid) {
			continue
		}
		// Shorten the step to the contact distance, never reversing it.
		contact := check.ContactWithObject(solid)
		switch {
		case dx > 0:
			dx = math.Max(0, math.Min(dx, contact.X()))
		case dx < 0:
			dx = math.Min(0, math.Max(dx, contact.X()))
		case dy > 0:
			dy = math.Max(0, math.Min(dy, contact.Y()))
		case dy < 0:
			dy = math.Min(0, math.Max(dy, contact.Y()))
		}
	}
	obj.X += dx
	obj.Y += dy
}
