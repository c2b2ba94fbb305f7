package repository

import (
	"github.com/kgrc4si/ikgrcscore/internal/model"
)

// Fixture values shared by every team.
const (
	fixtureScore = 0.3
	fixtureRank  = 3
)

type RankingRepository interface {
	FindByTeam(teamID string) (*model.Ranking, error)
	FindAll() ([]model.Ranking, error)
}

type fixtureRankingRepository struct {
	teams []string
}

func NewRankingRepository() RankingRepository {
	return &fixtureRankingRepository{teams: []string{"TeamB"}}
}

// FindByTeam echoes the requested team with the fixed rank and score.
func (r *fixtureRankingRepository) FindByTeam(teamID string) (*model.Ranking, error) {
	return &model.Ranking{ID: teamID, Rank: fixtureRank, Score: fixtureScore}, nil
}

func (r *fixtureRankingRepository) FindAll() ([]model.Ranking, error) {
	rankings := make([]model.Ranking, 0, len(r.teams))
	for _, team := range r.teams {
		rankings = append(rankings, model.Ranking{ID: team, Rank: fixtureRank, Score: fixtureScore})
	}
	return rankings, nil
}
