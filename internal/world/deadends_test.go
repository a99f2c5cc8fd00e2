package world

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/dungeongen/internal/grid"
)

// parseTiles builds a tile grid from rows of tile runes.
func parseTiles(t *testing.T, rows ...string) *grid.Grid[Tile] {
	t.Helper()

	g := grid.New[Tile](len(rows[0]), len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			found := false
			for _, tile := range Tiles {
				if tile.Rune() == r {
					g.Set(x, y, tile)
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("unknown tile rune %q at (%d,%d)", r, x, y)
			}
		}
	}
	return g
}

func renderTiles(g *grid.Grid[Tile]) string {
	return (&Dungeon{Tiles: g}).String()
}

func TestPruneDeadEnds(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []string
		removed int
	}{
		{
			name: "stub off a loop",
			in: []string{
				"#######",
				"#,,,,,#",
				"#,###,#",
				"#,,+,,#",
				"#,#####",
				"#,#####",
				"#######",
			},
			want: []string{
				"#######",
				"#,,,,,#",
				"#,###,#",
				"#,,+,,#",
				"#######",
				"#######",
				"#######",
			},
			removed: 2,
		},
		{
			name: "room keeps its floor",
			in: []string{
				"#######",
				"#...+,#",
				"#...#,#",
				"#...#,#",
				"#######",
			},
			want: []string{
				"#######",
				"#...###",
				"#...###",
				"#...###",
				"#######",
			},
			removed: 4,
		},
		{
			name: "corridor collapses to one cell",
			in: []string{
				"#######",
				"#,,,,,#",
				"#######",
			},
			want: []string{
				"#######",
				"#####,#",
				"#######",
			},
			removed: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Generator{tiles: parseTiles(t, tt.in...)}

			if got := g.PruneDeadEnds(); got != tt.removed {
				t.Errorf("PruneDeadEnds() = %d, want %d", got, tt.removed)
			}
			if got, want := renderTiles(g.tiles), strings.Join(tt.want, "\n"); got != want {
				t.Errorf("PruneDeadEnds() left\n%s\nwant\n%s", got, want)
			}
			if g.stats.DeadEndsRemoved != tt.removed {
				t.Errorf("stats.DeadEndsRemoved = %d, want %d", g.stats.DeadEndsRemoved, tt.removed)
			}
		})
	}
}

func TestPruneDeadEndsKeepsConnectivity(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := NewGenerator(45, 31, rand.New(rand.NewSource(seed)))
		g.PlaceRooms(40, 0)
		g.CarveMazes(50)
		if err := g.ConnectRegions(15); err != nil {
			t.Fatalf("seed %d: ConnectRegions() error = %v", seed, err)
		}

		before := Components(g.tiles)
		g.PruneDeadEnds()
		if after := Components(g.tiles); after != before {
			t.Errorf("seed %d: Components() = %d after pruning, want %d", seed, after, before)
		}
	}
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"all wall", []string{"###", "###", "###"}, 0},
		{"one area", []string{"#####", "#.+,#", "#####"}, 1},
		{"diagonal does not connect", []string{"####", "#.##", "##.#", "####"}, 2},
		{"doors connect", []string{"#######", "#.'.+,#", "#######"}, 1},
	}

	for _, tt := range tests {
		if got := Components(parseTiles(t, tt.rows...)); got != tt.want {
			t.Errorf("%s: Components() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
