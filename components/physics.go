package components

import (
	"github.com/automoto/doomerang-melee/combat"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PhysicsData is top-down locomotion. Velocity is in pixels per second.
// When Steering is set the physics system turns Destination into a
// velocity every tick; otherwise Velocity is used as given.
type PhysicsData struct {
	Speed       float64
	Velocity    dmath.Vec2
	Facing      dmath.Vec2
	Destination dmath.Vec2
	Steering    bool
}

// MoveToward steers toward position at full speed.
func (p *PhysicsData) MoveToward(position dmath.Vec2) {
	p.Destination = position
	p.Steering = true
}

func (p *PhysicsData) Stop() {
	p.Steering = false
	p.Velocity = dmath.Vec2{}
}

// FaceToward turns to direction. A zero direction keeps the old facing.
func (p *PhysicsData) FaceToward(direction dmath.Vec2) {
	if direction.X == 0 && direction.Y == 0 {
		return
	}
	p.Facing = combat.Direction(dmath.Vec2{}, direction)
}

// Drive sets a velocity from a move intent, clearing any steering.
func (p *PhysicsData) Drive(direction dmath.Vec2) {
	p.Steering = false
	d := combat.Direction(dmath.Vec2{}, direction)
	p.Velocity = dmath.Vec2{X: d.X * p.Speed, Y: d.Y * p.Speed}
	p.FaceToward(d)
}

var Physics = donburi.NewComponentType[PhysicsData]()
