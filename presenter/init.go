package presenter

import (
	"github.com/latticelabs/cubesim/grid"
	"github.com/latticelabs/cubesim/netfile"
	"github.com/latticelabs/cubesim/recipe"
	"github.com/latticelabs/cubesim/routing"
	"github.com/latticelabs/cubesim/simconfig"
)

// Init builds a ready-to-run presenter from a validated configuration:
// algorithm pair from the registry, grid seeded from the network file,
// universe dimensions derived from the topology (clamped upward to the
// configured minimum), and the recipe attached if one is configured.
func Init(cfg simconfig.Config) (*Presenter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pair, _ := routing.Lookup(cfg.Algorithm)

	var gridOpts []grid.Option
	if cfg.QueueCapacity > 0 {
		gridOpts = append(gridOpts, grid.WithQueueCapacity(cfg.QueueCapacity))
	}
	g := grid.New(pair.NewRouting(), pair.NewRobot(), gridOpts...)

	var maxX, maxY, maxZ int
	if cfg.NetworkFile != "" {
		cubes, err := netfile.LoadFile(cfg.NetworkFile)
		if err != nil {
			return nil, err
		}
		for _, c := range cubes {
			pos := c.Position()
			if _, err := g.AddNode(pos.X, pos.Y, pos.Z, grid.WithCube(c)); err != nil {
				return nil, err
			}
			if pos.X > maxX {
				maxX = pos.X
			}
			if pos.Y > maxY {
				maxY = pos.Y
			}
			if pos.Z > maxZ {
				maxZ = pos.Z
			}
		}
	}

	dims := [3]int{maxX + 1, maxY + 1, maxZ + 1}
	for i, d := range dims {
		if cfg.UniverseSize > d {
			dims[i] = cfg.UniverseSize
		}
	}

	var rcp *recipe.Recipe
	if cfg.RecipeFile != "" {
		var err error
		rcp, err = recipe.FromFile(cfg.RecipeFile)
		if err != nil {
			return nil, err
		}
	}

	return New(g, dims, rcp), nil
}
