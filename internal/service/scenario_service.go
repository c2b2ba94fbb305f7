package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/repository"
	"github.com/rs/zerolog/log"
)

type ScenarioService interface {
	GetScenario(id string) (*dto.ScenarioResponse, error)
	ListScenarios() ([]string, error)
}

type scenarioService struct {
	scenarioRepo repository.ScenarioRepository
}

func NewScenarioService(scenarioRepo repository.ScenarioRepository) ScenarioService {
	return &scenarioService{scenarioRepo: scenarioRepo}
}

func (s *scenarioService) GetScenario(id string) (*dto.ScenarioResponse, error) {
	scenario, err := s.scenarioRepo.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to get scenario from repository")
		return nil, fmt.Errorf("scenario %q: %w", id, err)
	}

	var data dto.ScenarioDTO
	if err := copier.Copy(&data, scenario); err != nil {
		return nil, fmt.Errorf("error preparing scenario response: %w", err)
	}
	resp := dto.NewScenarioResponse(data)
	return &resp, nil
}

func (s *scenarioService) ListScenarios() ([]string, error) {
	ids, err := s.scenarioRepo.ListIDs()
	if err != nil {
		return nil, fmt.Errorf("error listing scenarios: %w", err)
	}
	return ids, nil
}
