package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/thornwood/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadForest(t *testing.T) {
	lvl, err := Load(levels.FS, levels.Default)
	require.NoError(t, err)

	assert.Equal(t, "forest", lvl.Name)
	assert.Equal(t, 1600, lvl.Width)
	assert.Equal(t, 480, lvl.Height)
	assert.Equal(t, 16, lvl.TileSize)
	assert.Equal(t, Point{X: 64, Y: 432}, lvl.PlayerSpawn)

	require.Len(t, lvl.Enemies, 4)
	for i, e := range lvl.Enemies {
		assert.Equal(t, i, e.Index)
		if i > 0 {
			assert.Greater(t, e.X, lvl.Enemies[i-1].X)
		}
	}
	assert.Zero(t, lvl.Enemies[0].HP, "unset properties stay zero")
	last := lvl.Enemies[3]
	assert.Equal(t, 80, last.HP)
	assert.Equal(t, 16, last.Atk)
	assert.Equal(t, 5, last.Def)
	assert.Equal(t, 60, last.Exp)

	// Ground rows are merged into runs: a pit splits each row in two.
	var groundRow []Rect
	for _, r := range lvl.Solids {
		if r.Y == 432 {
			groundRow = append(groundRow, r)
		}
	}
	require.Len(t, groundRow, 2)
	assert.Equal(t, Rect{X: 0, Y: 432, W: 640, H: 16}, groundRow[0])
	assert.Equal(t, Rect{X: 720, Y: 432, W: 880, H: 16}, groundRow[1])
}

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="t" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="t.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="ground" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
</map>
`

func TestLoadRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(noSpawnTMX)}}
	_, err := Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
