package report

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// StationDescriptor is one entry of the declarative station table. Ordering
// is significant: it fixes the vertical render order and the indices used by
// the group table.
type StationDescriptor struct {
	Key       string `toml:"key"`
	APIName   string `toml:"api_name"`
	River     string `toml:"river"`
	Headwork  string `toml:"headwork"`
	ShortName string `toml:"short_name"`
}

// Title returns the row heading, e.g. "Jassar at Ravi" for the Jassar
// headwork on the river Ravi.
func (d StationDescriptor) Title() string {
	return fmt.Sprintf("%s at %s", d.Headwork, d.River)
}

// Table is the full declarative configuration of a report sheet: the ordered
// station list plus the groups of row indices that share a river and are
// joined by connector lines. Indices absent from every group render as
// standalone stations.
type Table struct {
	Stations []StationDescriptor `toml:"stations"`
	Groups   [][]int             `toml:"groups"`
}

// DefaultTable returns the built-in nine-station sheet covering the Ravi,
// Chenab/Indus and Sutlej reaches.
func DefaultTable() Table {
	return Table{
		Stations: []StationDescriptor{
			{Key: "jassar", APIName: "Jassar", River: "Ravi", Headwork: "Jassar", ShortName: "Jassar"},
			{Key: "shahdara", APIName: "Shahdara", River: "Ravi", Headwork: "Shahdara", ShortName: "Shahdara"},
			{Key: "balloki", APIName: "Balloki", River: "Ravi", Headwork: "Balloki", ShortName: "Balloki"},
			{Key: "marala", APIName: "Marala", River: "Chenab", Headwork: "Marala", ShortName: "Marala"},
			{Key: "trimmu", APIName: "Trimmu", River: "Chenab", Headwork: "Trimmu", ShortName: "Trimmu"},
			{Key: "panjnad", APIName: "Panjnad", River: "Chenab", Headwork: "Panjnad", ShortName: "Panjnad"},
			{Key: "guddu", APIName: "Guddu", River: "Indus", Headwork: "Guddu", ShortName: "Guddu"},
			{Key: "gandasinghwala", APIName: "Ganda Singh Wala", River: "Sutlej", Headwork: "Ganda Singh Wala", ShortName: "G. S. Wala"},
			{Key: "sulemanki", APIName: "Sulemanki", River: "Sutlej", Headwork: "Sulemanki", ShortName: "Sulemanki"},
		},
		Groups: [][]int{{0, 1, 2}, {3, 4, 5, 6}, {7, 8}},
	}
}

// LoadTable reads a station table from a TOML file and validates it.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read station table: %w", err)
	}
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parse station table %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("station table %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the structural invariants of the table: at least one
// station, ordered fields present, and group indices in range with no index
// claimed by two groups.
func (t Table) Validate() error {
	if len(t.Stations) == 0 {
		return fmt.Errorf("no stations defined")
	}
	for i, s := range t.Stations {
		if s.APIName == "" {
			return fmt.Errorf("station %d: api_name is required", i)
		}
		if s.River == "" || s.Headwork == "" {
			return fmt.Errorf("station %d (%s): river and headwork are required", i, s.APIName)
		}
		if s.ShortName == "" {
			return fmt.Errorf("station %d (%s): short_name is required", i, s.APIName)
		}
	}
	seen := make(map[int]bool)
	for gi, group := range t.Groups {
		if len(group) < 2 {
			return fmt.Errorf("group %d: needs at least two stations", gi)
		}
		for _, idx := range group {
			if idx < 0 || idx >= len(t.Stations) {
				return fmt.Errorf("group %d: station index %d out of range", gi, idx)
			}
			if seen[idx] {
				return fmt.Errorf("group %d: station index %d appears in more than one group", gi, idx)
			}
			seen[idx] = true
		}
	}
	return nil
}
