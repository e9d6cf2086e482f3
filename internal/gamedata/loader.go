package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// LoadFrom reads and unmarshals a JSON file from fsys.
// A data directory on disk can replace the embedded files this way.
func LoadFrom[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read data file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Bundle is every data file the game needs for one run.
type Bundle struct {
	Mobs    *MobRegistry
	Loot    *LootTables
	Palette Palette
}

// LoadBundle loads mobs, loot tables and the palette from fsys.
// Pass Embedded() for the built-in data.
func LoadBundle(fsys fs.FS) (*Bundle, error) {
	mobsFile, err := LoadFrom[MobsFile](fsys, "mobs.json")
	if err != nil {
		return nil, err
	}
	mobs, err := NewMobRegistry(mobsFile.Mobs)
	if err != nil {
		return nil, err
	}

	lootFile, err := LoadFrom[LootFile](fsys, "loot.json")
	if err != nil {
		return nil, err
	}
	loot, err := NewLootTables(lootFile.Tables)
	if err != nil {
		return nil, err
	}

	palette, err := LoadFrom[Palette](fsys, "palette.json")
	if err != nil {
		return nil, err
	}

	return &Bundle{Mobs: mobs, Loot: loot, Palette: palette}, nil
}

// MustLoadBundle loads the embedded bundle, panicking on error.
func MustLoadBundle() *Bundle {
	bundle, err := LoadBundle(dataFS)
	if err != nil {
		panic(err)
	}
	return bundle
}
