// File: internal/galaxy/home.go
// Project: OpenHo Galaxy Core
// Description: Wedge-based home-planet selection
// Version: 1.0.0
// Created: 2025-01-07

package galaxy

import "math"

// selectHomes partitions the plane around the origin into n_players
// equal wedges starting at a random angular offset, then draws one
// point per wedge (in wedge index order) as that player's home.
//
// If any wedge contains zero points, selection fails with
// ErrEmptyWedge for this seed. This deliberately fails fast instead of
// re-rolling the offset internally, so a caller's retry loop stays
// visible rather than hidden inside the generator.
func selectHomes(points []Point, numPlayers int, rng *DeterministicRNG) ([]int, error) {
	alpha := rng.NextDouble() * 2 * math.Pi
	wedgeWidth := 2 * math.Pi / float64(numPlayers)

	wedges := make([][]int, numPlayers)
	for i, p := range points {
		theta := math.Atan2(p.Y, p.X)
		if theta < 0 {
			theta += 2 * math.Pi
		}

		relative := theta - alpha
		for relative < 0 {
			relative += 2 * math.Pi
		}
		for relative >= 2*math.Pi {
			relative -= 2 * math.Pi
		}

		wedgeIdx := int(relative / wedgeWidth)
		if wedgeIdx >= numPlayers {
			wedgeIdx = numPlayers - 1
		}
		wedges[wedgeIdx] = append(wedges[wedgeIdx], i)
	}

	homes := make([]int, numPlayers)
	for w := 0; w < numPlayers; w++ {
		if len(wedges[w]) == 0 {
			return nil, ErrEmptyWedge
		}
		pick := rng.NextIntRange(0, int64(len(wedges[w])-1))
		homes[w] = wedges[w][pick]
	}

	return homes, nil
}
