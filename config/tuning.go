package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk shape of a tuning override file. Sections and fields
// left out of the file keep their current values.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Boar    BoarConfig    `yaml:"boar"`
	Combat  CombatConfig  `yaml:"combat"`
	Physics PhysicsConfig `yaml:"physics"`
	Spawner SpawnerConfig `yaml:"spawner"`
}

// CurrentTuning snapshots the live tuning globals.
func CurrentTuning() Tuning {
	return Tuning{
		Player:  Player,
		Boar:    Boar,
		Combat:  Combat,
		Physics: Physics,
		Spawner: Spawner,
	}
}

// ParseTuning overlays YAML data on top of base. Durations use Go syntax ("80ms").
func ParseTuning(base Tuning, data []byte) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a YAML override file and applies it to the globals.
// On error the globals are left untouched.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(CurrentTuning(), data)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Apply copies the tuning into the globals.
func (t Tuning) Apply() {
	Player = t.Player
	Boar = t.Boar
	Combat = t.Combat
	Physics = t.Physics
	Spawner = t.Spawner
}

func (t Tuning) validate() error {
	switch {
	case t.Player.MaxJumps < 1 || t.Player.MaxJumps > 2:
		return fmt.Errorf("config: player.max_jumps must be 1 or 2, got %d", t.Player.MaxJumps)
	case t.Player.BaseHP <= 0:
		return fmt.Errorf("config: player.base_hp must be positive, got %d", t.Player.BaseHP)
	case t.Player.BaseExpToNext <= 0:
		return fmt.Errorf("config: player.base_exp_to_next must be positive, got %d", t.Player.BaseExpToNext)
	case t.Boar.HP <= 0:
		return fmt.Errorf("config: boar.hp must be positive, got %d", t.Boar.HP)
	case t.Boar.ChargeRange > t.Boar.DetectRange:
		return fmt.Errorf("config: boar.charge_range (%v) exceeds detect_range (%v)", t.Boar.ChargeRange, t.Boar.DetectRange)
	}
	return nil
}
