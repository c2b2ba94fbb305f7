package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/repository"
)

type RankingService interface {
	GetRank(teamID string) (*dto.RankingDTO, error)
	ListRankings() ([]dto.RankingDTO, error)
}

type rankingService struct {
	rankingRepo repository.RankingRepository
}

func NewRankingService(rankingRepo repository.RankingRepository) RankingService {
	return &rankingService{rankingRepo: rankingRepo}
}

func (s *rankingService) GetRank(teamID string) (*dto.RankingDTO, error) {
	ranking, err := s.rankingRepo.FindByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("ranking for team %q: %w", teamID, err)
	}

	var resp dto.RankingDTO
	if err := copier.Copy(&resp, ranking); err != nil {
		return nil, fmt.Errorf("error preparing ranking response: %w", err)
	}
	return &resp, nil
}

func (s *rankingService) ListRankings() ([]dto.RankingDTO, error) {
	rankings, err := s.rankingRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching rankings: %w", err)
	}

	resp := make([]dto.RankingDTO, 0, len(rankings))
	if err := copier.Copy(&resp, &rankings); err != nil {
		return nil, fmt.Errorf("error preparing ranking list: %w", err)
	}
	return resp, nil
}
