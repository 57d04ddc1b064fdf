package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectData is the body collider of an entity in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// Center is the middle of the collider.
func (o ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the collider so its middle sits at p.
func (o ObjectData) SetCenter(p dmath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
