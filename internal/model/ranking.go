package model

// Ranking pairs a team with its rank position and score.
type Ranking struct {
	ID    string
	Rank  int
	Score float64
}
