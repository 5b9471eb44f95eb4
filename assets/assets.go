package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/deal-closer/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree, rooted so level paths read "levels/x.tmx".
func FS() fs.FS {
	return assetFS
}

// LoadLevel parses an embedded level file.
func LoadLevel(path string) (*leveldata.Layout, error) {
	layout, err := leveldata.Load(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return layout, nil
}

// MustLoadLevel is LoadLevel for startup paths where a broken build should panic.
func MustLoadLevel(path string) *leveldata.Layout {
	layout, err := LoadLevel(path)
	if err != nil {
		panic(err)
	}
	return layout
}

// LevelNames lists every embedded level by stem name.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(assetFS, "levels")
	return names, err
}
