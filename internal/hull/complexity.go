package hull

import "github.com/hullscope/hullscope/internal/wire"

// ComplexityNotes is the static complexity commentary attached to every
// sweep payload.
func ComplexityNotes() wire.ComplexityAnalysis {
	return wire.ComplexityAnalysis{
		JarvisMarch: wire.ComplexityProfile{
			Theoretical:     "O(nh) where n=points, h=hull vertices",
			BestCase:        "O(n log n) when h is small",
			WorstCase:       "O(n²) when all points are on hull",
			SpaceComplexity: "O(h)",
		},
		GrahamScan: wire.ComplexityProfile{
			Theoretical:     "O(n log n)",
			BestCase:        "O(n log n)",
			WorstCase:       "O(n log n)",
			SpaceComplexity: "O(n)",
		},
		Recommendation: "Graham Scan is generally better for large datasets due to consistent " +
			"O(n log n) time complexity, while Jarvis March can be better when hull size (h) " +
			"is very small relative to n.",
	}
}
