package session

import "math"

// Score summarizes quiz performance across the whole module.
type Score struct {
	Correct int
	Total   int
	Percent int
}

// ComputeScore tallies recorded answers against the module's total
// question count. Percent is round(100 × correct / total); with zero
// total questions it is 0.
func (s *Session) ComputeScore() Score {
	score := Score{}
	if s.Module == nil {
		return score
	}
	for ci, concept := range s.Module.Concepts {
		score.Total += len(concept.Quiz)
		for qi := range concept.Quiz {
			if a, ok := s.AnswerFor(ci, qi); ok && a.Correct {
				score.Correct++
			}
		}
	}
	if score.Total > 0 {
		score.Percent = int(math.Round(100 * float64(score.Correct) / float64(score.Total)))
	}
	return score
}
