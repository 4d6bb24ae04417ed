package sim

import (
	"sort"

	"github.com/rs/zerolog"
)

// ResolveRotorsByName looks each name up under root and returns the hits
// in list order. Missing names are skipped, not errors; the caller
// decides whether a partial result is worth keeping.
func ResolveRotorsByName(root *Node, names []string) []*Node {
	var rotors []*Node
	for _, name := range names {
		if n := root.FindDescendant(name); n != nil {
			rotors = append(rotors, n)
		}
	}
	return rotors
}

// ResolveRotorsByHeuristic picks the topN descendants satisfying pred,
// ordered by horizontal distance from the hub, farthest first. The sort
// is stable so equidistant meshes keep their traversal order and spin
// parity stays deterministic across runs.
func ResolveRotorsByHeuristic(root *Node, pred func(*Node) bool, topN int) []*Node {
	candidates := root.DescendantsMatching(pred)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Position.HorizontalDistance() > candidates[j].Position.HorizontalDistance()
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// FindRotors resolves the rotor set for a vehicle: the well-known name
// list first, then the farthest-from-hub mesh heuristic. An empty result
// is reported but tolerated; the drive runs without visual spin.
func FindRotors(root *Node, names []string, log zerolog.Logger) []*Node {
	if len(names) == 0 {
		names = DefaultRotorNames
	}
	rotors := ResolveRotorsByName(root, names)
	if len(rotors) > 0 {
		return rotors
	}

	rotors = ResolveRotorsByHeuristic(root, func(n *Node) bool {
		return n.Kind == NodeKindMesh
	}, 4)
	if len(rotors) == 0 {
		log.Warn().Str("vehicle", root.Name).Msg("no rotor meshes found, propellers will not spin")
	} else {
		log.Debug().Int("count", len(rotors)).Msg("rotors resolved by position heuristic")
	}
	return rotors
}
