package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/service"
	"github.com/rs/zerolog/log"
)

type RankingController struct {
	rankingService service.RankingService
}

func NewRankingController(rs service.RankingService) *RankingController {
	return &RankingController{rankingService: rs}
}

// GetRank godoc
// @Summary Get a rank
// @Description Get a rank
// @ID ranking
// @Tags ranking
// @Produce json
// @Param id path string true "The Team ID" example(TeamC)
// @Success 200 {object} dto.RankingDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /Ranking/{id} [get]
func (c *RankingController) GetRank(ctx *gin.Context) {
	teamID := ctx.Param("id")
	log.Info().Str("teamID", teamID).Msg("getRank is called")

	rank, err := c.rankingService.GetRank(teamID)
	if err != nil {
		log.Error().Err(err).Str("teamID", teamID).Msg("GetRank: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, ctx.Request.Method, "Server Error"))
		return
	}
	ctx.JSON(http.StatusOK, rank)
}

// ListRankings godoc
// @Summary Get ranking list
// @Description Get ranking list
// @ID rankingList
// @Tags ranking
// @Produce json
// @Success 200 {array} dto.RankingDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /Ranking [get]
func (c *RankingController) ListRankings(ctx *gin.Context) {
	log.Info().Msg("ranking is called")

	rankings, err := c.rankingService.ListRankings()
	if err != nil {
		log.Error().Err(err).Msg("ListRankings: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, ctx.Request.Method, "Server Error"))
		return
	}
	ctx.JSON(http.StatusOK, rankings)
}
