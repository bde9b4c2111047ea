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

const (
	groundLayer      = "ground"
	solidsGroup      = "Solids"
	playerSpawnGroup = "PlayerSpawn"
	enemySpawnGroup  = "Enemies"
)

// ErrNoPlayerSpawn is returned for levels without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn")

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS during development.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		TileSize: levelMap.TileWidth,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != groundLayer {
			continue
		}
		lvl.Solids = append(lvl.Solids, mergeRows(levelMap, layer)...)
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case solidsGroup:
			for _, o := range og.Objects {
				lvl.Solids = append(lvl.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case playerSpawnGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				lvl.PlayerSpawn = Point{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case enemySpawnGroup:
			for _, o := range og.Objects {
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{
					Point: Point{X: o.X, Y: o.Y},
					HP:    o.Properties.GetInt("hp"),
					Atk:   o.Properties.GetInt("atk"),
					Def:   o.Properties.GetInt("def"),
					Exp:   o.Properties.GetInt("exp"),
				})
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Index enemies left-to-right so stat scaling follows level progression.
	sort.SliceStable(lvl.Enemies, func(i, j int) bool {
		return lvl.Enemies[i].X < lvl.Enemies[j].X
	})
	for i := range lvl.Enemies {
		lvl.Enemies[i].Index = i
	}

	return lvl, nil
}

// mergeRows collapses horizontal runs of filled tiles into single rects to
// keep the collision space small.
func mergeRows(m *tiled.Map, layer *tiled.Layer) []Rect {
	var rects []Rect
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for y := 0; y < m.Height; y++ {
		start := -1
		for x := 0; x <= m.Width; x++ {
			filled := x < m.Width && !layer.Tiles[y*m.Width+x].IsNil()
			switch {
			case filled && start < 0:
				start = x
			case !filled && start >= 0:
				rects = append(rects, Rect{
					X: float64(start) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-start) * tileW,
					H: tileH,
				})
				start = -1
			}
		}
	}
	return rects
}
