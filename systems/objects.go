package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// penetrates reports whether a, moved by dx and dy, would sit inside b.
// Edges that only touch do not count, so a body resting flush on a wall is
// not inside it. resolv's Object.Overlaps counts touching edges.
func penetrates(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W && b.X < a.X+dx+a.W &&
		a.Y+dy < b.Y+b.H && b.Y < a.Y+dy+a.H
}

func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}
