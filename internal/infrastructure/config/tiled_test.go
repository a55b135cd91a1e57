package config

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTiledLevel(t *testing.T) {
	src, err := LoadLevelFile(os.DirFS("testdata"), "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, 32, src.TileSize)
	assert.Equal(t, []string{
		"####",
		"#P^#",
		"####",
	}, src.Rows, "solids win over hazards")
}

func TestLoadTiledLevel_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTiledLevel(os.DirFS("testdata"), "levels/none.tmx")
		assert.Error(t, err)
	})

	t.Run("non square tiles", func(t *testing.T) {
		fsys := fstest.MapFS{
			"wide.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="32" tileheight="16" infinite="0">
 <layer id="1" name="solid" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`)},
		}

		_, err := LoadTiledLevel(fsys, "wide.tmx")
		assert.ErrorContains(t, err, "square")
	})
}
