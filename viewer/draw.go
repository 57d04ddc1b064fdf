package viewer

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/automoto/doomerang-melee/combat"
	"github.com/automoto/doomerang-melee/components"
	cfg "github.com/automoto/doomerang-melee/config"
	"github.com/automoto/doomerang-melee/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor   = color.RGBA{100, 100, 100, 255}
	playerColor = cfg.LightBlue
	dyingColor  = color.RGBA{80, 80, 80, 255}
)

func (g *Game) drawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), wallColor, false)
	})
}

func (g *Game) drawCombatants(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		drawCombatant(screen, e, g.saved.ShowRadii)
	})
}

func drawCombatant(screen *ebiten.Image, e *donburi.Entry, showRadii bool) {
	o := components.Object.Get(e)

	// Body, tinted by enemy type and greyed out while dying
	c := playerColor
	if e.HasComponent(components.Enemy) {
		c = components.Enemy.Get(e).TintColor
	}
	if e.HasComponent(components.Death) {
		c = dyingColor
	}
	vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)

	// Facing marker
	center := o.Center()
	facing := components.Physics.Get(e).Facing
	vector.StrokeLine(screen,
		float32(center.X), float32(center.Y),
		float32(center.X+facing.X*o.W), float32(center.Y+facing.Y*o.W),
		1, cfg.White, false)

	// Weapon collider, only while it can hurt
	melee := components.Melee.Get(e)
	if melee.Weapon != nil && melee.Weapon.IsActive() {
		hb := melee.Hitbox
		vector.FillRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), cfg.Translucent, false)
		strokeObject(screen, hb, cfg.Red)
	}

	drawHealthBar(screen, o, components.Health.Get(e))

	// Detection, attack and give-up radii
	if showRadii && e.HasComponent(components.Enemy) {
		pc := components.Enemy.Get(e).Pursuit.Config()
		cx, cy := float32(center.X), float32(center.Y)
		vector.StrokeCircle(screen, cx, cy, float32(pc.DetectionRadius), 1, cfg.Yellow, false)
		vector.StrokeCircle(screen, cx, cy, float32(pc.AttackRadius), 1, cfg.Red, false)
		vector.StrokeCircle(screen, cx, cy, float32(pc.LoseTargetDistance), 1, cfg.Purple, false)
	}
}

func drawHealthBar(screen *ebiten.Image, o *components.ObjectData, h *components.HealthData) {
	const barHeight = 3
	x, y := float32(o.X), float32(o.Y-6)
	width := float32(o.W)
	vector.FillRect(screen, x, y, width, barHeight, cfg.Red, false)
	vector.FillRect(screen, x, y, width*float32(h.Fraction()), barHeight, cfg.Green, false)
}

func (g *Game) drawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !g.saved.ShowDebug {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvSolid):
			continue
		case obj.HasTags(tags.ResolvWeapon):
			c = cfg.Orange
		case obj.HasTags(tags.ResolvPlayer):
			c = cfg.Blue
		case obj.HasTags(tags.ResolvEnemy):
			c = cfg.LightRed
		}
		strokeObject(screen, obj, c)
	}
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
}

func (g *Game) drawStatus(_ *ecs.ECS, screen *ebiten.Image) {
	if !g.saved.ShowDebug {
		return
	}
	arena := g.arena

	var b strings.Builder
	t := arena.Tally()
	fmt.Fprintf(&b, "t=%.2fs FPS %.0f\n", arena.Now(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "strikes %d (chained %d) hits %d deaths %d\n", t.Strikes, t.ChainedStrikes, t.Hits, t.Deaths)

	if player, err := arena.Player(); err == nil {
		combo := components.Melee.Get(player).Combo
		fmt.Fprintf(&b, "combo %d attacking=%v queued=%v reset=%.2f\n",
			combo.ComboIndex(), combo.IsAttacking(), combo.QueuedNext(), combo.ResetCountdown())
	}

	// Sorted so the lines don't jump around between frames
	phases := arena.Phases()
	names := make([]string, 0, len(phases))
	for name := range phases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, phaseLabel(phases[name]))
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func phaseLabel(p combat.Phase) string {
	return strings.ToUpper(p.String())
}

func drawPaused(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "PAUSED", w/2-18, h/2)
}
