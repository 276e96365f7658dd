package config

import (
	"image/color"

	"github.com/automoto/riftarena/shared/gamemath"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed        float64 `yaml:"move_speed"`
	RotationSpeed    float64 `yaml:"rotation_speed"`
	Gravity          float64 `yaml:"gravity"`
	GroundedVelocity float64 `yaml:"grounded_velocity"` // Vertical speed held while standing
	JumpHeight       float64 `yaml:"jump_height"`
	MaxJumps         int     `yaml:"max_jumps"`

	// Combat
	Health           float64 `yaml:"health"`
	InvulnWindow     float64 `yaml:"invuln_window"`
	AttackCooldown   float64 `yaml:"attack_cooldown"`
	ComboThreshold   int     `yaml:"combo_threshold"`
	ComboResetTime   float64 `yaml:"combo_reset_time"` // Idle seconds before the strike counter drops
	FinisherDuration float64 `yaml:"finisher_duration"`
	AttackRange      float64 `yaml:"attack_range"` // Radius of the hit sphere
	AttackReach      float64 `yaml:"attack_reach"` // Distance of the hit sphere centre ahead of the player
	AttackDamage     float64 `yaml:"attack_damage"`
	LockOnRange      float64 `yaml:"lock_on_range"`
	KnockbackDecay   float64 `yaml:"knockback_decay"`
	DestroyDelay     float64 `yaml:"destroy_delay"` // 0 keeps the body in the world after death

	// Dimensions
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         float64 `yaml:"health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AttackDistance float64 `yaml:"attack_distance"`
	AttackForce    float64 `yaml:"attack_force"` // Lunge impulse
	BPM            float64 `yaml:"bpm"`          // Attacks per minute
	KnockForce     float64 `yaml:"knock_force"`  // Knockback received from player strikes
	ContactDamage  float64 `yaml:"contact_damage"`
	TurnRate       float64 `yaml:"turn_rate"`
	KnockbackDecay float64 `yaml:"knockback_decay"`
	RemovalDelay   float64 `yaml:"removal_delay"`

	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// AttackDefinition describes one scripted boss attack. Spawn points are
// offsets from the boss position.
type AttackDefinition struct {
	ID          string          `yaml:"id"`
	Animation   string          `yaml:"animation"`
	Windup      float64         `yaml:"windup"`
	SpawnPoints []gamemath.Vec3 `yaml:"spawn_points"`
	Damage      float64         `yaml:"damage"`
	Cooldown    float64         `yaml:"cooldown"` // Overrides BossConfig.AttackCooldown when > 0
}

// BossConfig contains the boss director configuration
type BossConfig struct {
	Health            float64            `yaml:"health"`
	InvulnWindow      float64            `yaml:"invuln_window"`
	RegenRate         float64            `yaml:"regen_rate"`
	RegenDelay        float64            `yaml:"regen_delay"`
	AttackCooldown    float64            `yaml:"attack_cooldown"`
	IdleDuration      float64            `yaml:"idle_duration"`
	TurnRate          float64            `yaml:"turn_rate"`
	CollisionOffDelay float64            `yaml:"collision_off_delay"`
	DeactivateDelay   float64            `yaml:"deactivate_delay"` // Counted from collision off
	Attacks           []AttackDefinition `yaml:"attacks"`

	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// ProjectileConfig contains boss projectile configuration
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	Damage       float64 `yaml:"damage"`
	Lifetime     float64 `yaml:"lifetime"`
	Radius       float64 `yaml:"radius"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Distance past the arena edge before despawn
}

// ArenaConfig contains arena pickup and jump pad configuration
type ArenaConfig struct {
	LayoutPath string `yaml:"layout_path"`

	PickupSpawnInterval float64 `yaml:"pickup_spawn_interval"`
	MaxPickups          int     `yaml:"max_pickups"`
	PickupLifetime      float64 `yaml:"pickup_lifetime"`
	InnerRadius         float64 `yaml:"inner_radius"`
	OuterRadius         float64 `yaml:"outer_radius"`
	SpawnHeight         float64 `yaml:"spawn_height"`
	InteractRange       float64 `yaml:"interact_range"`
	PickupDamage        float64 `yaml:"pickup_damage"`
	PickupTriggerMode   bool    `yaml:"pickup_trigger_mode"` // Consume on touch instead of on interact

	JumpPadMultiplier float64 `yaml:"jump_pad_multiplier"`
	JumpPadCooldown   float64 `yaml:"jump_pad_cooldown"`
	JumpPadRadius     float64 `yaml:"jump_pad_radius"`
}

// CombatConfig contains values shared by every combat participant
type CombatConfig struct {
	TickRate          float64 `yaml:"tick_rate"`
	DamageFlash       float64 `yaml:"damage_flash"`
	HealthBarTween    float64 `yaml:"health_bar_tween"`
	SpaceCellSize     int     `yaml:"space_cell_size"`
	SpacePadding      float64 `yaml:"space_padding"`
	AnimationHitDelay float64 `yaml:"animation_hit_delay"` // Used when no animator reports impact frames

	// Knockback below this magnitude no longer suppresses input or AI
	KnockbackEpsilon float64 `yaml:"knockback_epsilon"`
}

type Config struct {
	Width  int
	Height int
	Scale  float64 // Screen pixels per world unit in the debug view
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Projectile ProjectileConfig
var Arena ArenaConfig
var Combat CombatConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed        int64
	WatchConfig string // Directory of YAML overrides to hot reload, empty disables
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 640,
		Scale:  24,
	}
	Reset()
}

// Reset restores every table to its built-in defaults.
func Reset() {
	t := Defaults()
	Apply(t)
	Debug = DebugConfig{}
}

// Defaults returns the built-in combat tables.
func Defaults() Tables {
	return Tables{
		Player: PlayerConfig{
			MoveSpeed:        4.0,
			RotationSpeed:    10.0,
			Gravity:          -9.81,
			GroundedVelocity: -2.0,
			JumpHeight:       2.0,
			MaxJumps:         2,

			Health:           100,
			InvulnWindow:     0.5,
			AttackCooldown:   0.7,
			ComboThreshold:   4,
			ComboResetTime:   1.4,
			FinisherDuration: 1.3,
			AttackRange:      1.5,
			AttackReach:      1.0,
			AttackDamage:     20,
			LockOnRange:      8.0,
			KnockbackDecay:   5.0,
			DestroyDelay:     0,

			Radius: 0.4,
			Height: 1.8,
		},
		Enemy: EnemyConfig{
			Types: map[string]EnemyTypeConfig{
				"grunt": {
					Name:           "grunt",
					Health:         30,
					MoveSpeed:      2.0,
					AttackDistance: 1.5,
					AttackForce:    6.0,
					BPM:            35,
					KnockForce:     5.0,
					ContactDamage:  10,
					TurnRate:       8.0,
					KnockbackDecay: 5.0,
					RemovalDelay:   2.0,
					Radius:         0.5,
					Height:         1.8,
				},
				"brute": {
					Name:           "brute",
					Health:         80,
					MoveSpeed:      1.4,
					AttackDistance: 2.0,
					AttackForce:    8.0,
					BPM:            24,
					KnockForce:     2.5,
					ContactDamage:  20,
					TurnRate:       5.0,
					KnockbackDecay: 5.0,
					RemovalDelay:   2.0,
					Radius:         0.8,
					Height:         2.4,
				},
			},
			DefaultType: "grunt",
		},
		Boss: BossConfig{
			Health:            1000,
			InvulnWindow:      0.5,
			RegenRate:         0,
			RegenDelay:        5.0,
			AttackCooldown:    3.0,
			IdleDuration:      2.0,
			TurnRate:          2.0,
			CollisionOffDelay: 2.0,
			DeactivateDelay:   3.0,
			Attacks: []AttackDefinition{
				{
					ID:          "Attack1",
					Animation:   "Attack1",
					Windup:      3.0,
					SpawnPoints: []gamemath.Vec3{{X: 1, Y: 1, Z: 0}},
					Damage:      10,
				},
				{
					ID:          "Attack2",
					Animation:   "Attack2",
					Windup:      3.0,
					SpawnPoints: []gamemath.Vec3{{X: -1, Y: 1, Z: 0}},
					Damage:      10,
				},
				{
					ID:        "Attack3",
					Animation: "Attack3",
					Windup:    4.0,
					SpawnPoints: []gamemath.Vec3{
						{X: 0.5, Y: 1, Z: 0.5},
						{X: -0.5, Y: 1, Z: 0.5},
						{X: 0.5, Y: 1, Z: -0.5},
						{X: -0.5, Y: 1, Z: -0.5},
					},
					Damage: 10,
				},
			},
			Radius: 1.5,
			Height: 4.0,
		},
		Projectile: ProjectileConfig{
			Speed:        10.0,
			Damage:       10,
			Lifetime:     5.0,
			Radius:       0.3,
			BoundsMargin: 5.0,
		},
		Arena: ArenaConfig{
			LayoutPath: "levels/arena.tmx",

			PickupSpawnInterval: 5.0,
			MaxPickups:          5,
			PickupLifetime:      30.0,
			InnerRadius:         3.0,
			OuterRadius:         10.0,
			SpawnHeight:         0,
			InteractRange:       2.0,
			PickupDamage:        50,
			PickupTriggerMode:   false,

			JumpPadMultiplier: 3.0,
			JumpPadCooldown:   1.0,
			JumpPadRadius:     1.0,
		},
		Combat: CombatConfig{
			TickRate:          60,
			DamageFlash:       0.1,
			HealthBarTween:    0.25,
			SpaceCellSize:     1,
			SpacePadding:      8,
			AnimationHitDelay: 0.25,
			KnockbackEpsilon:  0.1,
		},
	}
}
