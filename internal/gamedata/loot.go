package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// Loot item identifiers used by the tables.
const (
	LootNone   = ""
	LootAir    = "air"
	LootGold   = "gold"
	LootPotion = "potion"
	LootBomb   = "bomb"
)

// Loot table identifiers.
const (
	TableMobDrop = "mobDrop"
	TableChest   = "chest"
)

// LootEntry is one weighted outcome of a loot roll.
type LootEntry struct {
	Item   string `json:"item"`
	Weight int    `json:"weight"`
}

// LootTableDef is a named, ordered list of weighted entries as stored in loot.json.
// Entries are a list rather than a map so that rolls are reproducible for a seed.
type LootTableDef struct {
	ID      string      `json:"id"`
	Entries []LootEntry `json:"entries"`
}

// LootFile represents the structure of loot.json.
type LootFile struct {
	Tables []LootTableDef `json:"tables"`
}

// LootTable rolls weighted outcomes.
type LootTable struct {
	entries     []LootEntry
	totalWeight int
}

// NewLootTable builds a table, rejecting negative weights.
func NewLootTable(entries []LootEntry) (*LootTable, error) {
	total := 0
	for _, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("loot entry %q has negative weight %d", e.Item, e.Weight)
		}
		total += e.Weight
	}
	return &LootTable{entries: entries, totalWeight: total}, nil
}

// Roll picks an item. An empty table (or one with zero total weight) yields LootNone.
func (t *LootTable) Roll(rng *rand.Rand) string {
	if t == nil || t.totalWeight <= 0 {
		return LootNone
	}

	roll := rng.Float64() * float64(t.totalWeight)
	cumulative := 0.0
	for _, e := range t.entries {
		cumulative += float64(e.Weight)
		if roll < cumulative {
			return e.Item
		}
	}
	return t.entries[len(t.entries)-1].Item
}

// TotalWeight returns the sum of all entry weights.
func (t *LootTable) TotalWeight() int {
	return t.totalWeight
}

// LootTables indexes loot tables by id.
type LootTables struct {
	tables map[string]*LootTable
}

// NewLootTables builds every table in defs. The mob drop and chest tables are required.
func NewLootTables(defs []LootTableDef) (*LootTables, error) {
	lt := &LootTables{tables: make(map[string]*LootTable, len(defs))}
	for _, def := range defs {
		table, err := NewLootTable(def.Entries)
		if err != nil {
			return nil, fmt.Errorf("loot table %s: %w", def.ID, err)
		}
		lt.tables[def.ID] = table
	}
	for _, id := range []string{TableMobDrop, TableChest} {
		if lt.tables[id] == nil {
			return nil, errors.New("loot.json is missing the " + id + " table")
		}
	}
	return lt, nil
}

// Get returns the table with the given id, or nil.
func (lt *LootTables) Get(id string) *LootTable {
	return lt.tables[id]
}

// Roll rolls the named table. Unknown tables yield LootNone.
func (lt *LootTables) Roll(id string, rng *rand.Rand) string {
	return lt.Get(id).Roll(rng)
}
