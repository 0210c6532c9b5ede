// Package verify checks the generated target graph before it is written:
// every target name unique, every dependency defined, no cycles.
package verify

import (
	"github.com/heimdalr/dag"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/engine/generator"
	"go.trai.ch/zerr"
)

// Check validates the emitted target graph. The first violation found aborts
// the check; callers treat any error as a generation defect, not user error.
func Check(targets []generator.TargetNode) error {
	d := dag.NewDAG()

	for _, node := range targets {
		if err := d.AddVertexByID(node.Name, node.Name); err != nil {
			return zerr.With(
				zerr.Wrap(domain.ErrDuplicateTarget, "verifying target graph"),
				"target", node.Name)
		}
	}

	for _, node := range targets {
		for _, dep := range node.Deps {
			if _, err := d.GetVertex(dep); err != nil {
				return zerr.With(
					zerr.With(
						zerr.Wrap(domain.ErrUndefinedTargetDependency, "verifying target graph"),
						"target", node.Name),
					"dependency", dep)
			}
			if err := d.AddEdge(dep, node.Name); err != nil {
				return zerr.With(
					zerr.With(
						zerr.Wrap(domain.ErrTargetCycle, "verifying target graph"),
						"target", node.Name),
					"dependency", dep)
			}
		}
	}

	return nil
}
