package config

import "time"

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second.
type PlayerConfig struct {
	// Movement
	MoveSpeed   float64 `yaml:"move_speed"`
	GroundDecay float64 `yaml:"ground_decay"` // per-tick multiplier with no input on the floor
	AirDecay    float64 `yaml:"air_decay"`    // per-tick multiplier with no input in the air
	AttackDecay float64 `yaml:"attack_decay"` // per-tick multiplier while attacking on the floor
	SnapSpeed   float64 `yaml:"snap_speed"`   // below this, grounded drift snaps to zero

	// Jumping
	JumpForce     float64       `yaml:"jump_force"`
	AirJumpForce  float64       `yaml:"air_jump_force"`
	MaxJumps      int           `yaml:"max_jumps"`
	CoyoteTime    time.Duration `yaml:"coyote_time"`
	JumpBuffer    time.Duration `yaml:"jump_buffer"`
	GroundedGrace time.Duration `yaml:"grounded_grace"`

	// Attack
	AttackRange    float64       `yaml:"attack_range"`
	AttackHeight   float64       `yaml:"attack_height"`
	AttackOffset   float64       `yaml:"attack_offset"` // hitbox centre distance from player centre
	AttackCooldown time.Duration `yaml:"attack_cooldown"`
	AttackStartup  time.Duration `yaml:"attack_startup"`
	AttackActive   time.Duration `yaml:"attack_active"`
	AttackDuration time.Duration `yaml:"attack_duration"` // full attack animation

	// Damage intake
	KnockbackForce    float64       `yaml:"knockback_force"`
	KnockbackLift     float64       `yaml:"knockback_lift"`
	KnockbackDuration time.Duration `yaml:"knockback_duration"`
	BlinkInterval     time.Duration `yaml:"blink_interval"`
	BlinkCount        int           `yaml:"blink_count"` // number of fade/unfade halves
	BlinkAlpha        float64       `yaml:"blink_alpha"`
	DeathDuration     time.Duration `yaml:"death_duration"`

	// Animation thresholds
	RunThreshold  float64 `yaml:"run_threshold"`
	FallThreshold float64 `yaml:"fall_threshold"`

	// Base stats
	BaseHP        int     `yaml:"base_hp"`
	BaseAtk       int     `yaml:"base_atk"`
	BaseDef       int     `yaml:"base_def"`
	BaseCrt       float64 `yaml:"base_crt"`
	BaseSpd       int     `yaml:"base_spd"`
	BaseExpToNext int     `yaml:"base_exp_to_next"`

	// Leveling
	LevelHP   int     `yaml:"level_hp"`
	LevelAtk  int     `yaml:"level_atk"`
	LevelDef  int     `yaml:"level_def"`
	ExpGrowth float64 `yaml:"exp_growth"`
	ExpBonus  float64 `yaml:"exp_bonus"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// BoarConfig contains the boar's default stats and AI tuning.
type BoarConfig struct {
	HP  int `yaml:"hp"`
	Atk int `yaml:"atk"`
	Def int `yaml:"def"`
	Exp int `yaml:"exp"`

	DetectRange     float64 `yaml:"detect_range"`
	ChargeRange     float64 `yaml:"charge_range"`
	LoseInterest    float64 `yaml:"lose_interest"` // multiple of DetectRange that ends a chase
	PatrolRange     float64 `yaml:"patrol_range"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	ChaseMultiplier float64 `yaml:"chase_multiplier"`
	RunSpeed        float64 `yaml:"run_speed"`

	IdleDwell      time.Duration `yaml:"idle_dwell"`
	WalkDwell      time.Duration `yaml:"walk_dwell"`
	ChargeDuration time.Duration `yaml:"charge_duration"`
	StunDuration   time.Duration `yaml:"stun_duration"`
	HitDuration    time.Duration `yaml:"hit_duration"`
	StunBlink      time.Duration `yaml:"stun_blink"`
	StunAlpha      float64       `yaml:"stun_alpha"`

	KnockbackForce float64 `yaml:"knockback_force"`
	KnockbackLift  float64 `yaml:"knockback_lift"`

	DeathDelay time.Duration `yaml:"death_delay"`
	DeathFade  time.Duration `yaml:"death_fade"`

	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// CombatConfig contains combat resolution tuning.
type CombatConfig struct {
	HitDebounce time.Duration `yaml:"hit_debounce"` // minimum re-hit interval per enemy
}

// PhysicsConfig contains physics-related configuration values.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// SpawnerConfig drives periodic enemy respawns.
type SpawnerConfig struct {
	Interval   time.Duration `yaml:"interval"`
	MinAlive   int           `yaml:"min_alive"`
	MinOffset  float64       `yaml:"min_offset"` // px ahead of the player
	Jitter     float64       `yaml:"jitter"`
	EdgeMargin float64       `yaml:"edge_margin"`

	// Stats added per player level.
	HPPerLevel  int `yaml:"hp_per_level"`
	AtkPerLevel int `yaml:"atk_per_level"`
	DefPerLevel int `yaml:"def_per_level"`
	ExpPerLevel int `yaml:"exp_per_level"`

	// Stats added per spawn index for level-placed enemies.
	HPPerIndex  int `yaml:"hp_per_index"`
	AtkPerIndex int `yaml:"atk_per_index"`
	DefPerIndex int `yaml:"def_per_index"`
	ExpPerIndex int `yaml:"exp_per_index"`
}

// Config holds general game configuration
type Config struct {
	Width           int
	Height          int
	TickRate        int
	KillPlaneMargin float64
	CellSize        int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Boar BoarConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Spawner SpawnerConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawHitboxes bool
}

func init() {
	C = &Config{
		Width:           800,
		Height:          480,
		TickRate:        60,
		KillPlaneMargin: 50,
		CellSize:        16,
	}
	Reset()
}

// Reset restores every tuning global to its built-in default.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:      800,
		MaxFallSpeed: 600,
	}

	Player = PlayerConfig{
		MoveSpeed:   160,
		GroundDecay: 0.8,
		AirDecay:    0.95,
		AttackDecay: 0.85,
		SnapSpeed:   10,

		JumpForce:     -330,
		AirJumpForce:  -270,
		MaxJumps:      2,
		CoyoteTime:    80 * time.Millisecond,
		JumpBuffer:    100 * time.Millisecond,
		GroundedGrace: 100 * time.Millisecond,

		AttackRange:    48,
		AttackHeight:   40,
		AttackOffset:   40,
		AttackCooldown: 400 * time.Millisecond,
		AttackStartup:  150 * time.Millisecond,
		AttackActive:   120 * time.Millisecond,
		AttackDuration: 570 * time.Millisecond, // 8 frames at 14fps

		KnockbackForce:    200,
		KnockbackLift:     -150,
		KnockbackDuration: 200 * time.Millisecond,
		BlinkInterval:     80 * time.Millisecond,
		BlinkCount:        12,
		BlinkAlpha:        0.3,
		DeathDuration:     1250 * time.Millisecond, // 10 frames at 8fps

		RunThreshold:  20,
		FallThreshold: 50,

		BaseHP:        100,
		BaseAtk:       10,
		BaseDef:       5,
		BaseCrt:       5,
		BaseSpd:       100,
		BaseExpToNext: 100,

		LevelHP:   15,
		LevelAtk:  2,
		LevelDef:  1,
		ExpGrowth: 1.5,
		ExpBonus:  50,

		CollisionWidth:  20,
		CollisionHeight: 44,
	}

	Boar = BoarConfig{
		HP:  30,
		Atk: 8,
		Def: 2,
		Exp: 15,

		DetectRange:     140,
		ChargeRange:     80,
		LoseInterest:    1.8,
		PatrolRange:     100,
		WalkSpeed:       40,
		ChaseMultiplier: 1.5,
		RunSpeed:        130,

		IdleDwell:      2000 * time.Millisecond,
		WalkDwell:      3000 * time.Millisecond,
		ChargeDuration: 1200 * time.Millisecond,
		StunDuration:   800 * time.Millisecond,
		HitDuration:    500 * time.Millisecond, // 4 frames at 8fps
		StunBlink:      160 * time.Millisecond,
		StunAlpha:      0.5,

		KnockbackForce: 180,
		KnockbackLift:  -80,

		DeathDelay: 200 * time.Millisecond,
		DeathFade:  500 * time.Millisecond,

		CollisionWidth:  30,
		CollisionHeight: 22,
	}

	Combat = CombatConfig{
		HitDebounce: 300 * time.Millisecond,
	}

	Spawner = SpawnerConfig{
		Interval:   15 * time.Second,
		MinAlive:   3,
		MinOffset:  200,
		Jitter:     300,
		EdgeMargin: 100,

		HPPerLevel:  8,
		AtkPerLevel: 2,
		DefPerLevel: 1,
		ExpPerLevel: 5,

		HPPerIndex:  10,
		AtkPerIndex: 3,
		DefPerIndex: 1,
		ExpPerIndex: 8,
	}
}
