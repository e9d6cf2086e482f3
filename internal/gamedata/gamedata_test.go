package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestEmbeddedMobs(t *testing.T) {
	file, err := LoadFrom[MobsFile](Embedded(), "mobs.json")
	if err != nil {
		t.Fatalf("Failed to load mobs: %v", err)
	}
	mobs := file.Mobs

	if len(mobs) != 3 {
		t.Errorf("Expected 3 mobs, got %d", len(mobs))
	}

	// Verify expected mobs exist
	expectedIDs := map[string]bool{"ghoul": false, "crawler": false, "brute": false}
	for _, m := range mobs {
		if _, ok := expectedIDs[m.ID]; ok {
			expectedIDs[m.ID] = true
		}
		if m.HP <= 0 || m.Speed <= 0 || m.AttackCooldown <= 0 {
			t.Errorf("mob %q has non-positive stats: %+v", m.ID, m)
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected mob %q not found", id)
		}
	}
}

func TestMobRegistry(t *testing.T) {
	bundle := MustLoadBundle()
	registry := bundle.Mobs

	if registry.Count() != 3 {
		t.Errorf("Expected 3 mob types, got %d", registry.Count())
	}

	ghoul := registry.GetByID("ghoul")
	if ghoul == nil {
		t.Fatal("Ghoul not found by ID")
	}
	if ghoul.Name != "Ghoul" {
		t.Errorf("Expected name 'Ghoul', got %q", ghoul.Name)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("unknown id should return nil")
	}

	// Test weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a, b := registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestNewMobRegistryRejectsEmpty(t *testing.T) {
	if _, err := NewMobRegistry(nil); err == nil {
		t.Error("expected an error for an empty mob list")
	}
	if _, err := NewMobRegistry([]MobDef{{ID: "x", SpawnWeight: -1}}); err == nil {
		t.Error("expected an error for a negative spawn weight")
	}
}

func TestLootTableWeights(t *testing.T) {
	table, err := NewLootTable([]LootEntry{
		{Item: LootGold, Weight: 85},
		{Item: LootPotion, Weight: 15},
	})
	if err != nil {
		t.Fatalf("NewLootTable: %v", err)
	}
	if table.TotalWeight() != 100 {
		t.Errorf("TotalWeight() = %d, want 100", table.TotalWeight())
	}

	rng := rand.New(rand.NewSource(7))
	counts := map[string]int{}
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		counts[table.Roll(rng)]++
	}

	if counts[LootGold]+counts[LootPotion] != rolls {
		t.Fatalf("unexpected items rolled: %v", counts)
	}
	// 15% potions, allow generous slack
	if p := counts[LootPotion]; p < 1200 || p > 1800 {
		t.Errorf("potion rolled %d/%d times, want about 1500", p, rolls)
	}
}

func TestLootTableEdgeCases(t *testing.T) {
	var nilTable *LootTable
	rng := rand.New(rand.NewSource(1))
	if got := nilTable.Roll(rng); got != LootNone {
		t.Errorf("nil table rolled %q", got)
	}

	empty, _ := NewLootTable(nil)
	if got := empty.Roll(rng); got != LootNone {
		t.Errorf("empty table rolled %q", got)
	}

	if _, err := NewLootTable([]LootEntry{{Item: "x", Weight: -3}}); err == nil {
		t.Error("expected an error for negative weight")
	}
}

func TestLootTablesRequireCoreTables(t *testing.T) {
	_, err := NewLootTables([]LootTableDef{{ID: TableChest, Entries: []LootEntry{{Item: LootAir, Weight: 1}}}})
	if err == nil {
		t.Error("expected an error when the mob drop table is missing")
	}

	bundle := MustLoadBundle()
	if bundle.Loot.Get(TableChest).TotalWeight() != 100 {
		t.Errorf("chest table weight = %d, want 100", bundle.Loot.Get(TableChest).TotalWeight())
	}
	if got := bundle.Loot.Roll("missing", rand.New(rand.NewSource(1))); got != LootNone {
		t.Errorf("unknown table rolled %q", got)
	}
}

func TestLoadBundleFromDirectory(t *testing.T) {
	fsys := fstest.MapFS{
		"mobs.json":    {Data: []byte(`{"mobs":[{"id":"rat","name":"Rat","glyph":"r","hp":5,"damage":1,"speed":0.05,"attackCooldown":30,"spawnWeight":1}]}`)},
		"loot.json":    {Data: []byte(`{"tables":[{"id":"mobDrop","entries":[{"item":"gold","weight":1}]},{"id":"chest","entries":[{"item":"potion","weight":1}]}]}`)},
		"palette.json": {Data: []byte(`{"visible":{"wall":"#FFFFFF"}}`)},
	}

	bundle, err := LoadBundle(fsys)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if bundle.Mobs.GetByID("rat") == nil {
		t.Error("override mob not loaded")
	}
	if got := bundle.Loot.Roll(TableChest, rand.New(rand.NewSource(1))); got != LootPotion {
		t.Errorf("override chest rolled %q", got)
	}
	if got := bundle.Palette.TileColor("wall", true); got != tcell.NewHexColor(0xFFFFFF) {
		t.Errorf("override palette wall = %v", got)
	}
	// Missing keys fall back to defaults.
	if got := bundle.Palette.TileColor("floor", false); got != tcell.ColorDarkGray {
		t.Errorf("fallback explored floor = %v", got)
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	if _, err := LoadBundle(fstest.MapFS{}); err == nil {
		t.Error("expected an error for an empty data directory")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFF", true}, // Shorthand
		{"#0e7e1fff", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	if MustParseHexColor("#F00") != MustParseHexColor("#FF0000") {
		t.Error("shorthand should expand to the full color")
	}
}

func TestMobDefMethods(t *testing.T) {
	def := MobDef{ID: "test", Glyph: "T", Color: "#FF0000"}

	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() != tcell.NewHexColor(0xFF0000) {
		t.Errorf("TCellColor() = %v", def.TCellColor())
	}

	blank := MobDef{}
	if blank.GlyphRune() != '?' {
		t.Errorf("blank glyph = %c, want '?'", blank.GlyphRune())
	}
}
