package components

import (
	"image/color"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName  string // "Grunt", "Brute", "Skirmisher" etc...
	Pursuit   *combat.Pursuit
	TintColor color.RGBA
}

var Enemy = donburi.NewComponentType[EnemyData]()
