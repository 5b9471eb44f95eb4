package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group and marker names used in level files.
const (
	GroupMarkers      = "Markers"
	GroupPlatforms    = "Platforms"
	GroupEnemies      = "Enemies"
	GroupCollectibles = "Collectibles"
	GroupBuildings    = "Buildings"

	MarkerGround      = "ground"
	MarkerPlayerSpawn = "playerSpawn"
	MarkerBossGate    = "bossGate"
	MarkerSpawnStop   = "spawnStop"
)

var ErrMissingGround = errors.New("level has no ground marker")

// Load parses a TMX file into a Layout. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	hasGround := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupMarkers:
			for _, o := range og.Objects {
				switch o.Name {
				case MarkerGround:
					layout.GroundY = o.Y
					hasGround = true
				case MarkerPlayerSpawn:
					layout.PlayerSpawn = Point{X: o.X, Y: o.Y}
				case MarkerBossGate:
					layout.BossGateX = o.X
				case MarkerSpawnStop:
					layout.SpawnStopX = o.X
				}
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				layout.Platforms = append(layout.Platforms, objectRect(o))
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				layout.Enemies = append(layout.Enemies, EnemySpawn{Kind: o.Name, X: o.X, Y: o.Y})
			}
		case GroupCollectibles:
			for _, o := range og.Objects {
				layout.Collectibles = append(layout.Collectibles, CollectibleSpawn{
					Kind:  o.Name,
					X:     o.X,
					Y:     o.Y,
					W:     o.Width,
					H:     o.Height,
					Value: o.Properties.GetInt("value"),
				})
			}
		case GroupBuildings:
			for _, o := range og.Objects {
				layout.Buildings = append(layout.Buildings, objectRect(o))
			}
		}
	}

	if !hasGround {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrMissingGround)
	}
	if layout.BossGateX == 0 {
		layout.BossGateX = layout.Width
	}
	if layout.SpawnStopX == 0 {
		layout.SpawnStopX = layout.BossGateX
	}

	// Sort left-to-right so spawn order is stable regardless of editor order
	sort.SliceStable(layout.Platforms, func(i, j int) bool {
		return layout.Platforms[i].X < layout.Platforms[j].X
	})
	sort.SliceStable(layout.Enemies, func(i, j int) bool {
		return layout.Enemies[i].X < layout.Enemies[j].X
	})
	sort.SliceStable(layout.Buildings, func(i, j int) bool {
		return layout.Buildings[i].X < layout.Buildings[j].X
	})

	return layout, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		layout, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[layout.Name] = layout
		names = append(names, layout.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}
