package config

import (
	"image/color"
	"strings"

	"github.com/automoto/doomerang-melee/combat"
)

// ComboTuning is the file form of combat.ComboConfig.
type ComboTuning struct {
	BaseDamage     float64   `mapstructure:"baseDamage"`
	AttackCooldown float64   `mapstructure:"attackCooldown"` // seconds
	ComboResetTime float64   `mapstructure:"comboResetTime"` // seconds
	MaxComboCount  int       `mapstructure:"maxComboCount"`
	WindowStart    float64   `mapstructure:"windowStart"` // fraction of the attack clip
	WindowEnd      float64   `mapstructure:"windowEnd"`
	Multipliers    []float64 `mapstructure:"multipliers"`
	ChainDelay     float64   `mapstructure:"chainDelay"` // seconds between chained strikes
}

func (t ComboTuning) Combo() combat.ComboConfig {
	return combat.ComboConfig{
		BaseDamage:     t.BaseDamage,
		AttackCooldown: t.AttackCooldown,
		ComboResetTime: t.ComboResetTime,
		MaxComboCount:  t.MaxComboCount,
		WindowStart:    t.WindowStart,
		WindowEnd:      t.WindowEnd,
		Multipliers:    append(combat.MultiplierTable(nil), t.Multipliers...),
		ChainDelay:     t.ChainDelay,
	}
}

// Sanitize repairs the tuning in place.
func (t *ComboTuning) Sanitize() []string {
	c := t.Combo()
	notes := c.Sanitize()
	*t = ComboTuning{
		BaseDamage:     c.BaseDamage,
		AttackCooldown: c.AttackCooldown,
		ComboResetTime: c.ComboResetTime,
		MaxComboCount:  c.MaxComboCount,
		WindowStart:    c.WindowStart,
		WindowEnd:      c.WindowEnd,
		Multipliers:    []float64(c.Multipliers),
		ChainDelay:     c.ChainDelay,
	}
	return notes
}

// PursuitTuning is the file form of combat.PursuitConfig. Radii are pixels.
type PursuitTuning struct {
	DetectionRadius     float64 `mapstructure:"detectionRadius"`
	AttackRadius        float64 `mapstructure:"attackRadius"`
	LoseTargetDistance  float64 `mapstructure:"loseTargetDistance"`
	ChaseUpdateInterval float64 `mapstructure:"chaseUpdateInterval"` // seconds
}

func (t PursuitTuning) Pursuit() combat.PursuitConfig {
	return combat.PursuitConfig{
		TargetRole:          combat.RolePlayer,
		DetectionRadius:     t.DetectionRadius,
		AttackRadius:        t.AttackRadius,
		LoseTargetDistance:  t.LoseTargetDistance,
		ChaseUpdateInterval: t.ChaseUpdateInterval,
	}
}

func (t *PursuitTuning) Sanitize() []string {
	p := t.Pursuit()
	notes := p.Sanitize()
	*t = PursuitTuning{
		DetectionRadius:     p.DetectionRadius,
		AttackRadius:        p.AttackRadius,
		LoseTargetDistance:  p.LoseTargetDistance,
		ChaseUpdateInterval: p.ChaseUpdateInterval,
	}
	return notes
}

// ClipTuning times one attack clip. StrikeStart and StrikeEnd are the
// fractions of the clip during which the weapon is live.
type ClipTuning struct {
	Duration    float64 `mapstructure:"duration"`
	StrikeStart float64 `mapstructure:"strikeStart"`
	StrikeEnd   float64 `mapstructure:"strikeEnd"`
	Frames      int     `mapstructure:"frames"`
}

func (t *ClipTuning) Sanitize(name string) []string {
	var notes []string
	if t.Duration <= 0 {
		notes = append(notes, name+": non-positive clip duration set to 0.1s")
		t.Duration = 0.1
	}
	if t.Frames < 1 {
		t.Frames = 1
	}
	if t.StrikeStart < 0 || t.StrikeStart >= 1 {
		notes = append(notes, name+": strikeStart clamped to 0")
		t.StrikeStart = 0
	}
	if t.StrikeEnd <= t.StrikeStart || t.StrikeEnd > 1 {
		notes = append(notes, name+": strikeEnd clamped to 1")
		t.StrikeEnd = 1
	}
	return notes
}

// WeaponTuning sizes the weapon collider. Reach is how far in front of the
// body the collider starts.
type WeaponTuning struct {
	Reach  float64 `mapstructure:"reach"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health    float64 `mapstructure:"health"`
	MoveSpeed float64 `mapstructure:"moveSpeed"` // pixels per second

	CollisionWidth  float64 `mapstructure:"collisionWidth"`
	CollisionHeight float64 `mapstructure:"collisionHeight"`

	Combo   ComboTuning  `mapstructure:"combo"`
	Attacks []ClipTuning `mapstructure:"attacks"` // one clip per combo variant
	Weapon  WeaponTuning `mapstructure:"weapon"`

	DeathDuration float64 `mapstructure:"deathDuration"` // seconds before removal
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string  `mapstructure:"name"`
	Health     float64 `mapstructure:"health"`
	ChaseSpeed float64 `mapstructure:"chaseSpeed"`

	CollisionWidth  float64 `mapstructure:"collisionWidth"`
	CollisionHeight float64 `mapstructure:"collisionHeight"`

	Combo   ComboTuning   `mapstructure:"combo"`
	Pursuit PursuitTuning `mapstructure:"pursuit"`
	Attack  ClipTuning    `mapstructure:"attack"`
	Weapon  WeaponTuning  `mapstructure:"weapon"`

	DeathDuration float64 `mapstructure:"deathDuration"`

	TintColor color.RGBA `mapstructure:"-"`
}

// EnemyConfig holds every enemy type by name.
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig
	DefaultType string
}

// Type finds an enemy type ignoring case, falling back to the default type.
func (c EnemyConfig) Type(name string) EnemyTypeConfig {
	if t, ok := c.lookup(name); ok {
		return t
	}
	if t, ok := c.lookup(c.DefaultType); ok {
		return t
	}
	return gruntType()
}

func (c EnemyConfig) lookup(name string) (EnemyTypeConfig, bool) {
	if t, ok := c.Types[name]; ok {
		return t, true
	}
	for key, t := range c.Types {
		if strings.EqualFold(key, name) {
			return t, true
		}
	}
	return EnemyTypeConfig{}, false
}

// ArenaConfig sizes the collision space.
type ArenaConfig struct {
	Level    string `mapstructure:"level"`
	CellSize int    `mapstructure:"cellSize"`
}

// SimConfig sets the fixed simulation step.
type SimConfig struct {
	TickRate  int     `mapstructure:"tickRate"`  // ticks per second
	FrameRate int     `mapstructure:"frameRate"` // sprite animation ticks per second
	TimeScale float64 `mapstructure:"timeScale"`
}

// DT is the length of one tick in seconds.
func (s SimConfig) DT() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(s.TickRate)
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Arena ArenaConfig
var Sim SimConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple      = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Translucent = color.RGBA{R: 255, G: 255, B: 255, A: 60}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

func gruntType() EnemyTypeConfig {
	return EnemyTypeConfig{
		Name:            "Grunt",
		Health:          60,
		ChaseSpeed:      70,
		CollisionWidth:  16,
		CollisionHeight: 40,
		Combo: ComboTuning{
			BaseDamage:     8,
			AttackCooldown: 1.0,
			ComboResetTime: 1.2,
			MaxComboCount:  2,
			WindowStart:    0.5,
			WindowEnd:      0.9,
			Multipliers:    []float64{1, 1.25},
			ChainDelay:     0.05,
		},
		Pursuit: PursuitTuning{
			DetectionRadius:     160,
			AttackRadius:        30,
			LoseTargetDistance:  240,
			ChaseUpdateInterval: 0.2,
		},
		Attack:        ClipTuning{Duration: 0.5, StrikeStart: 0.4, StrikeEnd: 0.7, Frames: 6},
		Weapon:        WeaponTuning{Reach: 2, Width: 24, Height: 20},
		DeathDuration: 0.75,
		TintColor:     White,
	}
}

// Reset restores every tuning value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 368,
	}

	// Player Config
	Player = PlayerConfig{
		Health:          100,
		MoveSpeed:       120,
		CollisionWidth:  16,
		CollisionHeight: 40,

		Combo: ComboTuning{
			BaseDamage:     10,
			AttackCooldown: 0.4,
			ComboResetTime: 1.0,
			MaxComboCount:  3,
			WindowStart:    0.5,
			WindowEnd:      0.9,
			Multipliers:    []float64{1, 1.5, 2},
			ChainDelay:     0.05,
		},
		// Punch, punch, kick. The last clip is slower and reaches further.
		Attacks: []ClipTuning{
			{Duration: 0.35, StrikeStart: 0.3, StrikeEnd: 0.6, Frames: 5},
			{Duration: 0.35, StrikeStart: 0.3, StrikeEnd: 0.6, Frames: 5},
			{Duration: 0.5, StrikeStart: 0.35, StrikeEnd: 0.7, Frames: 7},
		},
		Weapon:        WeaponTuning{Reach: 2, Width: 28, Height: 20},
		DeathDuration: 1.0,
	}

	grunt := gruntType()

	brute := gruntType()
	brute.Name = "Brute"
	brute.Health = 120
	brute.ChaseSpeed = 50
	brute.CollisionWidth = 20
	brute.CollisionHeight = 44
	brute.Combo.BaseDamage = 15
	brute.Combo.AttackCooldown = 1.5
	brute.Combo.MaxComboCount = 1
	brute.Combo.Multipliers = []float64{1}
	brute.Pursuit.AttackRadius = 36
	brute.Pursuit.DetectionRadius = 120
	brute.Attack = ClipTuning{Duration: 0.8, StrikeStart: 0.5, StrikeEnd: 0.75, Frames: 8}
	brute.Weapon = WeaponTuning{Reach: 2, Width: 32, Height: 24}
	brute.TintColor = Orange

	skirmisher := gruntType()
	skirmisher.Name = "Skirmisher"
	skirmisher.Health = 30
	skirmisher.ChaseSpeed = 100
	skirmisher.CollisionWidth = 14
	skirmisher.CollisionHeight = 36
	skirmisher.Combo.BaseDamage = 5
	skirmisher.Combo.AttackCooldown = 0.6
	skirmisher.Combo.MaxComboCount = 3
	skirmisher.Combo.Multipliers = []float64{1, 1, 1.5}
	skirmisher.Pursuit.DetectionRadius = 200
	skirmisher.Pursuit.LoseTargetDistance = 300
	skirmisher.Pursuit.ChaseUpdateInterval = 0.1
	skirmisher.Attack = ClipTuning{Duration: 0.3, StrikeStart: 0.3, StrikeEnd: 0.6, Frames: 4}
	skirmisher.TintColor = Yellow

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			grunt.Name:      grunt,
			brute.Name:      brute,
			skirmisher.Name: skirmisher,
		},
		DefaultType: grunt.Name,
	}

	Arena = ArenaConfig{
		Level:    "levels/arena.tmx",
		CellSize: 16,
	}

	Sim = SimConfig{
		TickRate:  60,
		FrameRate: 60,
		TimeScale: 1,
	}
}

// Sanitize repairs every tuning value that the state machines could not
// work with and returns a note per repair.
func Sanitize() []string {
	var notes []string
	prefix := func(p string, ns []string) {
		for _, n := range ns {
			notes = append(notes, p+": "+n)
		}
	}

	prefix("player.combo", Player.Combo.Sanitize())
	if len(Player.Attacks) == 0 {
		notes = append(notes, "player.attacks: empty, using one default clip")
		Player.Attacks = []ClipTuning{{Duration: 0.35, StrikeStart: 0.3, StrikeEnd: 0.6, Frames: 5}}
	}
	for i := range Player.Attacks {
		notes = append(notes, Player.Attacks[i].Sanitize("player.attacks")...)
	}
	if Player.Health <= 0 {
		notes = append(notes, "player.health: non-positive, set to 1")
		Player.Health = 1
	}

	for name, t := range Enemy.Types {
		key := "enemy.types." + name
		prefix(key+".combo", t.Combo.Sanitize())
		prefix(key+".pursuit", t.Pursuit.Sanitize())
		notes = append(notes, t.Attack.Sanitize(key+".attack")...)
		if t.Health <= 0 {
			notes = append(notes, key+".health: non-positive, set to 1")
			t.Health = 1
		}
		Enemy.Types[name] = t
	}

	if Arena.CellSize < 1 {
		notes = append(notes, "arena.cellSize: set to 16")
		Arena.CellSize = 16
	}
	if Sim.TickRate < 1 {
		notes = append(notes, "sim.tickRate: set to 60")
		Sim.TickRate = 60
	}
	if Sim.FrameRate < 1 {
		Sim.FrameRate = Sim.TickRate
	}
	if Sim.TimeScale <= 0 {
		notes = append(notes, "sim.timeScale: set to 1")
		Sim.TimeScale = 1
	}
	return notes
}
