package factory

import (
	"github.com/automoto/doomerang-melee/archetypes"
	"github.com/automoto/doomerang-melee/components"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)
	return wall
}

// BoundsThickness is how far the arena fence reaches in from each edge.
// The fence sits inside the map because resolv ignores cells outside the
// space.
const BoundsThickness = 8

// CreateBounds fences the arena along its edges.
func CreateBounds(w donburi.World, width, height float64) {
	const t = BoundsThickness
	CreateWall(w, 0, 0, width, t)
	CreateWall(w, 0, height-t, width, t)
	CreateWall(w, 0, t, t, height-2*t)
	CreateWall(w, width-t, t, t, height-2*t)
}
