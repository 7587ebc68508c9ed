package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/space-commander/parameter"
)

// Tuning is the full balance sheet of a run
// Durations are written as Go duration strings ("4s", "250ms") in YAML
type Tuning struct {
	Player     PlayerTuning     `yaml:"player"`
	Missile    MissileTuning    `yaml:"missile"`
	Scan       ScanTuning       `yaml:"scan"`
	Shield     ShieldTuning     `yaml:"shield"`
	Difficulty DifficultyTuning `yaml:"difficulty"`
	Field      FieldTuning      `yaml:"field"`
	Upgrades   UpgradeTuning    `yaml:"upgrades"`
}

type PlayerTuning struct {
	MaxEnergy              int           `yaml:"maxEnergy"`
	EnergyRechargeInterval time.Duration `yaml:"energyRechargeInterval"`
	EnergyPerRecharge      int           `yaml:"energyPerRecharge"`
	MaxHealth              int           `yaml:"maxHealth"`
	HealthRechargeInterval time.Duration `yaml:"healthRechargeInterval"`
	HealthPerRecharge      int           `yaml:"healthPerRecharge"`
	ScorePerKill           int           `yaml:"scorePerKill"`
	PlanetRadius           float64       `yaml:"planetRadius"`
}

type MissileTuning struct {
	EnergyCost           int           `yaml:"energyCost"`
	Speed                float64       `yaml:"speed"`
	Radius               float64       `yaml:"radius"`
	TargetTolerance      float64       `yaml:"targetTolerance"`
	ExplosionRadius      float64       `yaml:"explosionRadius"`
	LargeExplosionRadius float64       `yaml:"largeExplosionRadius"`
	ExplosionLinger      time.Duration `yaml:"explosionLinger"`
	ClusterRadius        float64       `yaml:"clusterRadius"`
	LargeClusterRadius   float64       `yaml:"largeClusterRadius"`
	VampireRefund        int           `yaml:"vampireRefund"`
}

type ScanTuning struct {
	EnergyCost          int           `yaml:"energyCost"`
	Speed               float64       `yaml:"speed"`
	InitialRadius       float64       `yaml:"initialRadius"`
	MaxRadius           float64       `yaml:"maxRadius"`
	DyingMaxRadius      float64       `yaml:"dyingMaxRadius"`
	DyingLimit          int           `yaml:"dyingLimit"`
	RevealDuration      time.Duration `yaml:"revealDuration"`
	AutoScanEnabled     bool          `yaml:"autoScanEnabled"`
	AutoScanInterval    time.Duration `yaml:"autoScanInterval"`
	AutoScanMinInterval time.Duration `yaml:"autoScanMinInterval"`
	AutoScanMaxInterval time.Duration `yaml:"autoScanMaxInterval"`
}

type ShieldTuning struct {
	EnergyCost int           `yaml:"energyCost"`
	CostRate   time.Duration `yaml:"costRate"`
	Radius     float64       `yaml:"radius"`
}

type DifficultyTuning struct {
	EnemySpeed            float64       `yaml:"enemySpeed"`
	EnemyRadius           float64       `yaml:"enemyRadius"`
	GhostRadius           float64       `yaml:"ghostRadius"`
	SpeedStep             float64       `yaml:"speedStep"`
	WaveSize              int           `yaml:"waveSize"`
	WaveInterval          time.Duration `yaml:"waveInterval"`
	MinWaveInterval       time.Duration `yaml:"minWaveInterval"`
	IntervalStep          time.Duration `yaml:"intervalStep"`
	MilestoneIntervalStep time.Duration `yaml:"milestoneIntervalStep"`
	MilestoneScore        int           `yaml:"milestoneScore"`
}

type FieldTuning struct {
	HalfExtent      float64       `yaml:"halfExtent"`
	SpawnMargin     float64       `yaml:"spawnMargin"`
	WarningDuration time.Duration `yaml:"warningDuration"`
}

// IntUpgrade raises an integer cap by Step up to Cap
type IntUpgrade struct {
	Cost int `yaml:"cost"`
	Step int `yaml:"step"`
	Cap  int `yaml:"cap"`
}

// FloatUpgrade raises a rate by Step up to Cap
type FloatUpgrade struct {
	Cost int     `yaml:"cost"`
	Step float64 `yaml:"step"`
	Cap  float64 `yaml:"cap"`
}

// IntervalUpgrade shortens an interval by Step down to Floor
type IntervalUpgrade struct {
	Cost  int           `yaml:"cost"`
	Step  time.Duration `yaml:"step"`
	Floor time.Duration `yaml:"floor"`
}

type UpgradeTuning struct {
	MaxEnergy      IntUpgrade      `yaml:"maxEnergy"`
	EnergyRecharge IntervalUpgrade `yaml:"energyRecharge"`
	MaxHealth      IntUpgrade      `yaml:"maxHealth"`
	HealthRecharge IntervalUpgrade `yaml:"healthRecharge"`
	ScanSpeed      FloatUpgrade    `yaml:"scanSpeed"`
	MissileSpeed   FloatUpgrade    `yaml:"missileSpeed"`

	ClusterMissileCost int `yaml:"clusterMissileCost"`
	EnergyVampireCost  int `yaml:"energyVampireCost"`
	DyingScannersCost  int `yaml:"dyingScannersCost"`
	LargerMissilesCost int `yaml:"largerMissilesCost"`
}

// Default returns the stock balance built from parameter constants
func Default() Tuning {
	return Tuning{
		Player: PlayerTuning{
			MaxEnergy:              parameter.EnergyMax,
			EnergyRechargeInterval: parameter.EnergyRechargeInterval,
			EnergyPerRecharge:      parameter.EnergyPerRecharge,
			MaxHealth:              parameter.HealthMax,
			HealthRechargeInterval: parameter.HealthRechargeInterval,
			HealthPerRecharge:      parameter.HealthPerRecharge,
			ScorePerKill:           parameter.ScorePerKill,
			PlanetRadius:           parameter.PlanetRadius,
		},
		Missile: MissileTuning{
			EnergyCost:           parameter.MissileEnergyCost,
			Speed:                parameter.MissileSpeed,
			Radius:               parameter.MissileRadius,
			TargetTolerance:      parameter.MissileTargetTolerance,
			ExplosionRadius:      parameter.MissileExplosionRadius,
			LargeExplosionRadius: parameter.MissileLargeExplosionRadius,
			ExplosionLinger:      parameter.MissileExplosionLinger,
			ClusterRadius:        parameter.MissileClusterRadius,
			LargeClusterRadius:   parameter.MissileLargeClusterRadius,
			VampireRefund:        parameter.VampireRefund,
		},
		Scan: ScanTuning{
			EnergyCost:          parameter.ScanEnergyCost,
			Speed:               parameter.ScanSpeed,
			InitialRadius:       parameter.ScanInitialRadius,
			MaxRadius:           parameter.ScanMaxRadius,
			DyingMaxRadius:      parameter.DyingScanMaxRadius,
			DyingLimit:          parameter.DyingScanLimit,
			RevealDuration:      parameter.RevealDuration,
			AutoScanInterval:    parameter.AutoScanInterval,
			AutoScanMinInterval: parameter.AutoScanMinInterval,
			AutoScanMaxInterval: parameter.AutoScanMaxInterval,
		},
		Shield: ShieldTuning{
			EnergyCost: parameter.ShieldEnergyCost,
			CostRate:   parameter.ShieldCostRate,
			Radius:     parameter.ShieldRadius,
		},
		Difficulty: DifficultyTuning{
			EnemySpeed:            parameter.EnemySpeed,
			EnemyRadius:           parameter.EnemyRadius,
			GhostRadius:           parameter.GhostRadius,
			SpeedStep:             parameter.DifficultySpeedStep,
			WaveSize:              parameter.WaveSize,
			WaveInterval:          parameter.WaveInterval,
			MinWaveInterval:       parameter.DifficultyMinWaveInterval,
			IntervalStep:          parameter.DifficultyIntervalStep,
			MilestoneIntervalStep: parameter.DifficultyMilestoneIntervalStep,
			MilestoneScore:        parameter.DifficultyMilestoneScore,
		},
		Field: FieldTuning{
			HalfExtent:      parameter.FieldHalfExtent,
			SpawnMargin:     parameter.SpawnMargin,
			WarningDuration: parameter.SpawnWarningDuration,
		},
		Upgrades: UpgradeTuning{
			MaxEnergy: IntUpgrade{
				Cost: parameter.UpgradeMaxEnergyCost,
				Step: parameter.UpgradeMaxEnergyStep,
				Cap:  parameter.UpgradeMaxEnergyCap,
			},
			EnergyRecharge: IntervalUpgrade{
				Cost:  parameter.UpgradeEnergyRechargeCost,
				Step:  parameter.UpgradeEnergyRechargeStep,
				Floor: parameter.UpgradeEnergyRechargeFloor,
			},
			MaxHealth: IntUpgrade{
				Cost: parameter.UpgradeMaxHealthCost,
				Step: parameter.UpgradeMaxHealthStep,
				Cap:  parameter.UpgradeMaxHealthCap,
			},
			HealthRecharge: IntervalUpgrade{
				Cost:  parameter.UpgradeHealthRechargeCost,
				Step:  parameter.UpgradeHealthRechargeStep,
				Floor: parameter.UpgradeHealthRechargeFloor,
			},
			ScanSpeed: FloatUpgrade{
				Cost: parameter.UpgradeScanSpeedCost,
				Step: parameter.UpgradeScanSpeedStep,
				Cap:  parameter.UpgradeScanSpeedCap,
			},
			MissileSpeed: FloatUpgrade{
				Cost: parameter.UpgradeMissileSpeedCost,
				Step: parameter.UpgradeMissileSpeedStep,
				Cap:  parameter.UpgradeMissileSpeedCap,
			},
			ClusterMissileCost: parameter.SuperClusterMissileCost,
			EnergyVampireCost:  parameter.SuperEnergyVampireCost,
			DyingScannersCost:  parameter.SuperDyingScannersCost,
			LargerMissilesCost: parameter.SuperLargerMissilesCost,
		},
	}
}

// Load reads a YAML override file on top of Default and validates the result
// Keys absent from the file keep their default values
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}

	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// Marshal renders the tuning as YAML, used to dump a starter override file
func (t Tuning) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// Validate reports every inconsistent value at once
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := t.Player
	check(p.MaxEnergy > 0, "player.maxEnergy must be positive, got %d", p.MaxEnergy)
	check(p.MaxHealth > 0, "player.maxHealth must be positive, got %d", p.MaxHealth)
	check(p.EnergyRechargeInterval > 0, "player.energyRechargeInterval must be positive")
	check(p.HealthRechargeInterval > 0, "player.healthRechargeInterval must be positive")
	check(p.EnergyPerRecharge >= 0, "player.energyPerRecharge must not be negative")
	check(p.HealthPerRecharge >= 0, "player.healthPerRecharge must not be negative")
	check(p.ScorePerKill >= 0, "player.scorePerKill must not be negative")

	m := t.Missile
	check(m.EnergyCost >= 0, "missile.energyCost must not be negative")
	check(m.Speed > 0, "missile.speed must be positive")
	check(m.ExplosionLinger > 0, "missile.explosionLinger must be positive")
	check(m.TargetTolerance >= 0, "missile.targetTolerance must not be negative")

	s := t.Scan
	check(s.EnergyCost >= 0, "scan.energyCost must not be negative")
	check(s.Speed > 0, "scan.speed must be positive")
	check(s.MaxRadius > s.InitialRadius, "scan.maxRadius %.1f must exceed initialRadius %.1f", s.MaxRadius, s.InitialRadius)
	check(s.DyingMaxRadius > s.InitialRadius, "scan.dyingMaxRadius %.1f must exceed initialRadius %.1f", s.DyingMaxRadius, s.InitialRadius)
	check(s.RevealDuration >= parameter.RevealDurationMin && s.RevealDuration <= parameter.RevealDurationMax,
		"scan.revealDuration %s outside [%s, %s]", s.RevealDuration, parameter.RevealDurationMin, parameter.RevealDurationMax)
	check(s.AutoScanMinInterval > 0 && s.AutoScanMinInterval <= s.AutoScanMaxInterval,
		"scan auto interval bounds [%s, %s] are not ordered", s.AutoScanMinInterval, s.AutoScanMaxInterval)
	check(s.AutoScanInterval >= s.AutoScanMinInterval && s.AutoScanInterval <= s.AutoScanMaxInterval,
		"scan.autoScanInterval %s outside its bounds", s.AutoScanInterval)

	check(t.Shield.CostRate > 0, "shield.costRate must be positive")
	check(t.Shield.EnergyCost >= 0, "shield.energyCost must not be negative")

	d := t.Difficulty
	check(d.WaveSize > 0, "difficulty.waveSize must be positive")
	check(d.MinWaveInterval > 0, "difficulty.minWaveInterval must be positive")
	check(d.WaveInterval >= d.MinWaveInterval, "difficulty.waveInterval %s below floor %s", d.WaveInterval, d.MinWaveInterval)
	check(d.SpeedStep >= 0, "difficulty.speedStep must not be negative")
	check(d.IntervalStep >= 0 && d.MilestoneIntervalStep >= 0, "difficulty interval steps must not be negative")
	check(d.MilestoneScore > 0, "difficulty.milestoneScore must be positive")

	check(t.Field.HalfExtent > 0, "field.halfExtent must be positive")

	u := t.Upgrades
	check(u.MaxEnergy.Cap >= p.MaxEnergy, "upgrades.maxEnergy.cap %d below starting max %d", u.MaxEnergy.Cap, p.MaxEnergy)
	check(u.MaxHealth.Cap >= p.MaxHealth, "upgrades.maxHealth.cap %d below starting max %d", u.MaxHealth.Cap, p.MaxHealth)
	check(u.EnergyRecharge.Floor > 0 && u.EnergyRecharge.Floor <= p.EnergyRechargeInterval, "upgrades.energyRecharge.floor out of range")
	check(u.HealthRecharge.Floor > 0 && u.HealthRecharge.Floor <= p.HealthRechargeInterval, "upgrades.healthRecharge.floor out of range")
	check(u.ScanSpeed.Cap >= s.Speed, "upgrades.scanSpeed.cap %.1f below starting speed %.1f", u.ScanSpeed.Cap, s.Speed)
	check(u.MissileSpeed.Cap >= m.Speed, "upgrades.missileSpeed.cap %.1f below starting speed %.1f", u.MissileSpeed.Cap, m.Speed)

	return errors.Join(errs...)
}
