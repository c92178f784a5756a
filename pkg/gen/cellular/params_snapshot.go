package cellular

import "roomgen/pkg/core"

// Parameters describes the active configuration.
func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", g.cfg.Width),
				core.IntParam("h", "Height", g.cfg.Height),
				core.Int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				core.IntParam("iterations", "Iterations", g.cfg.Iterations),
				core.FloatParam("noise_density", "Noise density", g.cfg.NoiseDensity),
			},
		},
	}}
}
