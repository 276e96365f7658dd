package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/combat.yaml
var embeddedTables []byte

// ErrUnknownAttack is returned when a lookup names an attack the boss table
// does not define.
var ErrUnknownAttack = errors.New("config: unknown attack")

// Tables groups every designer-facing combat table.
type Tables struct {
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Boss       BossConfig       `yaml:"boss"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Arena      ArenaConfig      `yaml:"arena"`
	Combat     CombatConfig     `yaml:"combat"`
}

// Current returns a copy of the active tables.
func Current() Tables {
	t := Tables{
		Player:     Player,
		Enemy:      Enemy,
		Boss:       Boss,
		Projectile: Projectile,
		Arena:      Arena,
		Combat:     Combat,
	}
	t.Enemy.Types = make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		t.Enemy.Types[k] = v
	}
	t.Boss.Attacks = append([]AttackDefinition(nil), Boss.Attacks...)
	return t
}

// Apply makes t the active set of tables.
func Apply(t Tables) {
	Player = t.Player
	Enemy = t.Enemy
	Boss = t.Boss
	Projectile = t.Projectile
	Arena = t.Arena
	Combat = t.Combat
}

// Parse decodes YAML overrides on top of the built-in defaults and repairs
// any value that would break the simulation.
func Parse(data []byte) (Tables, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("config: unmarshal tables: %w", err)
	}
	t.validate()
	return t, nil
}

// Load parses data and applies the result.
func Load(data []byte) error {
	t, err := Parse(data)
	if err != nil {
		return err
	}
	Apply(t)
	return nil
}

// LoadFile reads YAML overrides from path and applies them.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// LoadEmbedded applies the tables shipped with the binary.
func LoadEmbedded() error {
	return Load(embeddedTables)
}

// EmbeddedTables returns the raw YAML shipped with the binary.
func EmbeddedTables() []byte {
	return embeddedTables
}

// Attack returns the boss attack with the given id.
func (b *BossConfig) Attack(id string) (AttackDefinition, error) {
	for _, a := range b.Attacks {
		if a.ID == id {
			return a, nil
		}
	}
	return AttackDefinition{}, fmt.Errorf("%w: %q", ErrUnknownAttack, id)
}

// UnmarshalYAML layers each listed enemy type over its current values. A
// type the tables do not know yet starts from the default type.
func (e *EnemyConfig) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		DefaultType string               `yaml:"default_type"`
		Types       map[string]yaml.Node `yaml:"types"`
	}{DefaultType: e.DefaultType}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	e.DefaultType = raw.DefaultType
	if len(raw.Types) == 0 {
		return nil
	}

	types := make(map[string]EnemyTypeConfig, len(e.Types)+len(raw.Types))
	for name, et := range e.Types {
		types[name] = et
	}
	for name, node := range raw.Types {
		et, ok := types[name]
		if !ok {
			et = e.EnemyType(e.DefaultType)
			et.Name = name
		}
		if err := node.Decode(&et); err != nil {
			return fmt.Errorf("enemy.types.%s: %w", name, err)
		}
		types[name] = et
	}
	e.Types = types
	return nil
}

// EnemyType returns the named enemy type, falling back to the default type.
func (e *EnemyConfig) EnemyType(name string) EnemyTypeConfig {
	if t, ok := e.Types[name]; ok {
		return t
	}
	if t, ok := e.Types[e.DefaultType]; ok {
		return t
	}
	return Defaults().Enemy.Types["grunt"]
}

func (t *Tables) validate() {
	def := Defaults()

	positive(&t.Player.MoveSpeed, def.Player.MoveSpeed, "player.move_speed")
	positive(&t.Player.RotationSpeed, def.Player.RotationSpeed, "player.rotation_speed")
	positive(&t.Player.JumpHeight, def.Player.JumpHeight, "player.jump_height")
	positive(&t.Player.Health, def.Player.Health, "player.health")
	positive(&t.Player.AttackRange, def.Player.AttackRange, "player.attack_range")
	positive(&t.Player.ComboResetTime, def.Player.ComboResetTime, "player.combo_reset_time")
	positive(&t.Player.FinisherDuration, def.Player.FinisherDuration, "player.finisher_duration")
	nonNegative(&t.Player.AttackCooldown, def.Player.AttackCooldown, "player.attack_cooldown")
	nonNegative(&t.Player.InvulnWindow, def.Player.InvulnWindow, "player.invuln_window")
	nonNegative(&t.Player.AttackDamage, def.Player.AttackDamage, "player.attack_damage")
	nonNegative(&t.Player.DestroyDelay, def.Player.DestroyDelay, "player.destroy_delay")
	if t.Player.Gravity >= 0 {
		log.Printf("[config] player.gravity must be negative, using %v", def.Player.Gravity)
		t.Player.Gravity = def.Player.Gravity
	}
	if t.Player.ComboThreshold < 1 {
		log.Printf("[config] player.combo_threshold must be at least 1, using %d", def.Player.ComboThreshold)
		t.Player.ComboThreshold = def.Player.ComboThreshold
	}
	if t.Player.MaxJumps < 1 {
		t.Player.MaxJumps = def.Player.MaxJumps
	}

	if len(t.Enemy.Types) == 0 {
		t.Enemy.Types = def.Enemy.Types
	}
	base := def.Enemy.Types["grunt"]
	for name, et := range t.Enemy.Types {
		if et.Name == "" {
			et.Name = name
		}
		prefix := "enemy." + name
		positive(&et.Health, base.Health, prefix+".health")
		positive(&et.MoveSpeed, base.MoveSpeed, prefix+".move_speed")
		positive(&et.AttackDistance, base.AttackDistance, prefix+".attack_distance")
		positive(&et.BPM, base.BPM, prefix+".bpm")
		positive(&et.TurnRate, base.TurnRate, prefix+".turn_rate")
		positive(&et.KnockbackDecay, base.KnockbackDecay, prefix+".knockback_decay")
		positive(&et.Radius, base.Radius, prefix+".radius")
		positive(&et.Height, base.Height, prefix+".height")
		nonNegative(&et.AttackForce, base.AttackForce, prefix+".attack_force")
		nonNegative(&et.KnockForce, base.KnockForce, prefix+".knock_force")
		nonNegative(&et.ContactDamage, base.ContactDamage, prefix+".contact_damage")
		nonNegative(&et.RemovalDelay, base.RemovalDelay, prefix+".removal_delay")
		t.Enemy.Types[name] = et
	}
	if _, ok := t.Enemy.Types[t.Enemy.DefaultType]; !ok {
		t.Enemy.DefaultType = def.Enemy.DefaultType
		if _, ok := t.Enemy.Types[t.Enemy.DefaultType]; !ok {
			t.Enemy.Types[t.Enemy.DefaultType] = base
		}
	}

	positive(&t.Boss.Health, def.Boss.Health, "boss.health")
	positive(&t.Boss.TurnRate, def.Boss.TurnRate, "boss.turn_rate")
	nonNegative(&t.Boss.InvulnWindow, def.Boss.InvulnWindow, "boss.invuln_window")
	nonNegative(&t.Boss.RegenRate, def.Boss.RegenRate, "boss.regen_rate")
	nonNegative(&t.Boss.RegenDelay, def.Boss.RegenDelay, "boss.regen_delay")
	nonNegative(&t.Boss.AttackCooldown, def.Boss.AttackCooldown, "boss.attack_cooldown")
	nonNegative(&t.Boss.IdleDuration, def.Boss.IdleDuration, "boss.idle_duration")
	nonNegative(&t.Boss.CollisionOffDelay, def.Boss.CollisionOffDelay, "boss.collision_off_delay")
	nonNegative(&t.Boss.DeactivateDelay, def.Boss.DeactivateDelay, "boss.deactivate_delay")
	for i := range t.Boss.Attacks {
		a := &t.Boss.Attacks[i]
		if a.ID == "" {
			a.ID = fmt.Sprintf("Attack%d", i+1)
		}
		nonNegative(&a.Windup, 0, "boss.attacks."+a.ID+".windup")
		nonNegative(&a.Damage, 0, "boss.attacks."+a.ID+".damage")
		nonNegative(&a.Cooldown, 0, "boss.attacks."+a.ID+".cooldown")
	}

	positive(&t.Projectile.Speed, def.Projectile.Speed, "projectile.speed")
	positive(&t.Projectile.Lifetime, def.Projectile.Lifetime, "projectile.lifetime")
	positive(&t.Projectile.Radius, def.Projectile.Radius, "projectile.radius")
	nonNegative(&t.Projectile.Damage, def.Projectile.Damage, "projectile.damage")

	positive(&t.Arena.PickupSpawnInterval, def.Arena.PickupSpawnInterval, "arena.pickup_spawn_interval")
	positive(&t.Arena.PickupLifetime, def.Arena.PickupLifetime, "arena.pickup_lifetime")
	positive(&t.Arena.OuterRadius, def.Arena.OuterRadius, "arena.outer_radius")
	positive(&t.Arena.InteractRange, def.Arena.InteractRange, "arena.interact_range")
	positive(&t.Arena.JumpPadMultiplier, def.Arena.JumpPadMultiplier, "arena.jump_pad_multiplier")
	positive(&t.Arena.JumpPadRadius, def.Arena.JumpPadRadius, "arena.jump_pad_radius")
	nonNegative(&t.Arena.JumpPadCooldown, def.Arena.JumpPadCooldown, "arena.jump_pad_cooldown")
	if t.Arena.MaxPickups < 0 {
		t.Arena.MaxPickups = 0
	}
	if t.Arena.InnerRadius < 0 || t.Arena.InnerRadius >= t.Arena.OuterRadius {
		fixed := t.Arena.OuterRadius * 0.3
		if fixed < 0.1 {
			fixed = 0.1
		}
		log.Printf("[config] arena.inner_radius %v must be below outer_radius %v, using %v",
			t.Arena.InnerRadius, t.Arena.OuterRadius, fixed)
		t.Arena.InnerRadius = fixed
	}

	positive(&t.Combat.TickRate, def.Combat.TickRate, "combat.tick_rate")
	nonNegative(&t.Combat.DamageFlash, def.Combat.DamageFlash, "combat.damage_flash")
	nonNegative(&t.Combat.HealthBarTween, def.Combat.HealthBarTween, "combat.health_bar_tween")
	positive(&t.Combat.SpacePadding, def.Combat.SpacePadding, "combat.space_padding")
	positive(&t.Combat.KnockbackEpsilon, def.Combat.KnockbackEpsilon, "combat.knockback_epsilon")
	if t.Combat.SpaceCellSize < 1 {
		t.Combat.SpaceCellSize = def.Combat.SpaceCellSize
	}
}

func positive(v *float64, fallback float64, name string) {
	if *v > 0 {
		return
	}
	log.Printf("[config] %s must be positive, using %v", name, fallback)
	*v = fallback
}

func nonNegative(v *float64, fallback float64, name string) {
	if *v >= 0 {
		return
	}
	log.Printf("[config] %s must not be negative, using %v", name, fallback)
	*v = fallback
}
