package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML shape of every overridable config section. Fields left
// out of a file keep their built-in values.
type Tuning struct {
	Screen       Config            `yaml:"screen"`
	Player       PlayerConfig      `yaml:"player"`
	Weapons      WeaponsConfig     `yaml:"weapons"`
	Projectiles  ProjectileConfig  `yaml:"projectiles"`
	Enemies      EnemyConfig       `yaml:"enemies"`
	Level        LevelConfig       `yaml:"level"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Camera       CameraConfig      `yaml:"camera"`
	Audio        AudioConfig       `yaml:"audio"`
}

// TuningFile is the file name looked up in the user and local config dirs.
const TuningFile = "tuning.yaml"

// LoadOverrides merges a tuning file onto the defaults and returns the path it
// used, or "" when none was found.
// Search order: customPath -> ~/.deal-closer/tuning.yaml -> ./configs/tuning.yaml -> defaults
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath(TuningFile), filepath.Join("configs", TuningFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// ApplyOverrides merges YAML onto the current values. On a parse error nothing
// is changed.
func ApplyOverrides(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	t.apply()
	return nil
}

// CurrentTuning returns a copy of the live config sections.
func CurrentTuning() Tuning {
	return Tuning{
		Screen:       *C,
		Player:       Player,
		Weapons:      Weapons,
		Projectiles:  Projectiles,
		Enemies:      Enemies,
		Level:        Level,
		Collectibles: Collectibles,
		Camera:       Camera,
		Audio:        Audio,
	}
}

func (t Tuning) apply() {
	screen := t.Screen
	C = &screen
	Player = t.Player
	Weapons = t.Weapons
	Projectiles = t.Projectiles
	Enemies = t.Enemies
	Level = t.Level
	Collectibles = t.Collectibles
	Camera = t.Camera
	Audio = t.Audio
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".deal-closer", filename)
}
