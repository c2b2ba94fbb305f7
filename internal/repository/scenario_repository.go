package repository

import (
	"github.com/kgrc4si/ikgrcscore/internal/model"
)

type ScenarioRepository interface {
	FindByID(id string) (*model.Scenario, error)
	ListIDs() ([]string, error)
}

type fixtureScenarioRepository struct {
	scenario model.Scenario
	ids      []string
}

// NewScenarioRepository serves the fixed scenario fixtures. Every id resolves to the same scenario.
func NewScenarioRepository() ScenarioRepository {
	return &fixtureScenarioRepository{
		scenario: model.Scenario{ID: "Senario1", Title: "Senario1", Scene: 1, Activities: []string{"Test"}},
		ids:      []string{"test1", "test2"},
	}
}

func (r *fixtureScenarioRepository) FindByID(id string) (*model.Scenario, error) {
	s := r.scenario
	s.Activities = append([]string(nil), r.scenario.Activities...)
	return &s, nil
}

func (r *fixtureScenarioRepository) ListIDs() ([]string, error) {
	return append([]string(nil), r.ids...), nil
}
