// Package layout computes deterministic 3D placements for a hierarchical set
// of agents: leaders on an elevated axis, teachers in a fixed-width grid at a
// lower elevation, and students on a circle around their teacher.
//
// Generation is a pure function of its configuration: no engine handles, no
// shared state, no errors. Anomalous counts are clamped rather than rejected,
// so every well-formed Config yields a valid (possibly empty) placement set.
// Materializing the placements as visible objects is the renderer's job; see
// the sink package.
//
// # Example
//
//	cfg := layout.DefaultConfig()
//	cfg.TeacherCount = 4
//	placements := layout.Generate(cfg)
//	for _, p := range placements {
//	    fmt.Println(p.ID, p.Position)
//	}
package layout
