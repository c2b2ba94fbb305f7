package dto

import "net/http"

// ScenarioDTO is the scenario payload inside ScenarioResponse.
type ScenarioDTO struct {
	ID         string   `json:"id" example:"Senario1"`
	Title      string   `json:"title" example:"Senario1"`
	Scene      int      `json:"scene" example:"1"`
	Activities []string `json:"activities" example:"Read_book1_scene1"`
}

type ScenarioResponse struct {
	StatusCode int         `json:"statusCode" example:"200"`
	Method     string      `json:"method" example:"GET"`
	Message    string      `json:"message" example:"Succeed"`
	Data       ScenarioDTO `json:"data"`
}

func NewScenarioResponse(data ScenarioDTO) ScenarioResponse {
	return ScenarioResponse{
		StatusCode: http.StatusOK,
		Method:     http.MethodGet,
		Message:    messageSucceed,
		Data:       data,
	}
}

type RankingDTO struct {
	ID    string  `json:"id" example:"TeamA"`
	Rank  int     `json:"rank" example:"1"`
	Score float64 `json:"score" example:"20.0"`
}
