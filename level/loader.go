// Package level reads arena maps made in Tiled.
package level

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	spawnGroup       = "Spawns"
	wallGroup        = "Walls"
	kindPlayer       = "player"
	kindEnemy        = "enemy"
	defaultEnemyType = "Grunt"
)

// ErrNoPlayerSpawn is returned for maps without a player spawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn")

type Spawn struct {
	Name      string
	X, Y      float64
	EnemyType string
}

// Rect is an axis-aligned box in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Arena is the parsed map: pixel bounds, obstacles and where combatants
// start.
type Arena struct {
	Name    string
	Width   int
	Height  int
	Player  Spawn
	Enemies []Spawn
	Walls   []Rect
}

// LoadArena parses the TMX file at path inside fsys.
func LoadArena(fsys fs.FS, path string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", path, err)
	}

	arena := &Arena{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	var players []Spawn
	for _, og := range levelMap.ObjectGroups {
		if og.Name == wallGroup {
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				arena.Walls = append(arena.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
			continue
		}
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Class
			if kind == "" {
				kind = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			spawn := Spawn{Name: o.Name, X: o.X, Y: o.Y}
			switch strings.ToLower(kind) {
			case kindPlayer:
				players = append(players, spawn)
			case kindEnemy:
				spawn.EnemyType = o.Properties.GetString("enemyType")
				if spawn.EnemyType == "" {
					spawn.EnemyType = defaultEnemyType
				}
				arena.Enemies = append(arena.Enemies, spawn)
			}
		}
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("load arena %s: %w", path, ErrNoPlayerSpawn)
	}

	// Sort spawns by X position (left to right) for a stable creation order
	byX := func(s []Spawn) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].X < s[j].X })
	}
	byX(players)
	byX(arena.Enemies)
	arena.Player = players[0]

	return arena, nil
}
