package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in order.
const (
	LayerArena ecs.LayerID = iota
	LayerOverlay
)
