package walker

import "roomgen/pkg/core"

// Parameters describes the active configuration.
func (g *Generator) Parameters() core.ParameterSnapshot {
	c := g.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Agents",
			Params: []core.Parameter{
				core.IntParam("max_agents", "Max agents", c.MaxAgents),
				core.FloatParam("change_direction_chance", "Turn chance", c.ChangeDirectionChance),
				core.FloatParam("spawn_chance", "Spawn chance", c.SpawnChance),
				core.FloatParam("prune_chance", "Prune chance", c.PruneChance),
				core.StringParam("spawn_strategy", "Spawn strategy", string(c.SpawnStrategy)),
			},
		},
		{
			Name: "Termination",
			Params: []core.Parameter{
				core.FloatParam("target_open_fraction", "Target open fraction", c.TargetOpenFraction),
				core.IntParam("max_iterations", "Max iterations", c.MaxIterations),
			},
		},
		{
			Name: "Post-processing",
			Params: []core.Parameter{
				core.BoolParam("despeckle", "Despeckle", c.Despeckle),
				core.BoolParam("add_border", "Add border", c.AddBorder),
			},
		},
	}}
}
