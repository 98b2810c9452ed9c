package config

import "fmt"

type Catalog struct {
	Maps []MapDef `yaml:"maps"`
}

// MapDef is one stage of the journey. All fields are immutable once
// loaded; the simulation rebuilds its world from them on each stage
// transition.
type MapDef struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	Border       bool       `yaml:"border"`
	Entry        PointDef   `yaml:"entry"`
	Exit         PointDef   `yaml:"exit"`
	Walls        []WallDef  `yaml:"walls"`
	HobbitSpawns []PointDef `yaml:"hobbit_spawns"`
	WraithSpawns []PointDef `yaml:"wraith_spawns"`
	Note         string     `yaml:"note"`
}

type PointDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// WallDef is a rectangle of impassable cells. W and H default to 1,
// so a bare {x, y} entry marks a single cell.
type WallDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// IndexOf resolves a map id to its position in the journey. An
// unknown id is a caller defect and fails fast.
func (c *Catalog) IndexOf(id string) (int, error) {
	for i := range c.Maps {
		if c.Maps[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("config: unknown map id %q", id)
}

// ByID returns the map definition for id, or an error for ids not in
// the catalog.
func (c *Catalog) ByID(id string) (*MapDef, error) {
	i, err := c.IndexOf(id)
	if err != nil {
		return nil, err
	}
	return &c.Maps[i], nil
}

func (m *MapDef) inBounds(p PointDef) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

func (c *Catalog) validate() error {
	if len(c.Maps) == 0 {
		return fmt.Errorf("config: catalog has no maps")
	}
	seen := map[string]bool{}
	for i := range c.Maps {
		m := &c.Maps[i]
		if m.ID == "" {
			return fmt.Errorf("config: map %d has no id", i)
		}
		if seen[m.ID] {
			return fmt.Errorf("config: duplicate map id %q", m.ID)
		}
		seen[m.ID] = true
		if m.Width <= 0 || m.Height <= 0 {
			return fmt.Errorf("config: map %q has invalid size %dx%d", m.ID, m.Width, m.Height)
		}
		if !m.inBounds(m.Entry) {
			return fmt.Errorf("config: map %q entry %v out of bounds", m.ID, m.Entry)
		}
		if !m.inBounds(m.Exit) {
			return fmt.Errorf("config: map %q exit %v out of bounds", m.ID, m.Exit)
		}
		if m.Entry == m.Exit {
			return fmt.Errorf("config: map %q entry and exit coincide", m.ID)
		}
		for _, s := range m.WraithSpawns {
			if !m.inBounds(s) {
				return fmt.Errorf("config: map %q wraith spawn %v out of bounds", m.ID, s)
			}
		}
		for _, s := range m.HobbitSpawns {
			if !m.inBounds(s) {
				return fmt.Errorf("config: map %q hobbit spawn %v out of bounds", m.ID, s)
			}
		}
	}
	if len(c.Maps[0].HobbitSpawns) == 0 {
		return fmt.Errorf("config: first map %q has no hobbit spawns", c.Maps[0].ID)
	}
	return nil
}
