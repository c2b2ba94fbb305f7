package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/service"
	"github.com/rs/zerolog/log"
)

type SenarioController struct {
	scenarioService service.ScenarioService
}

func NewSenarioController(ss service.ScenarioService) *SenarioController {
	return &SenarioController{scenarioService: ss}
}

// GetSenario godoc
// @Summary Get a senario
// @Description Get a senario
// @ID senario
// @Tags senario
// @Produce json
// @Param id path string true "The Senario ID" example(Senario1)
// @Success 200 {object} dto.ScenarioResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /Senario/{id} [get]
func (c *SenarioController) GetSenario(ctx *gin.Context) {
	id := ctx.Param("id")
	log.Info().Str("id", id).Msg("getSenario is called")

	resp, err := c.scenarioService.GetScenario(id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("GetSenario: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, ctx.Request.Method, "Server Error"))
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSenario godoc
// @Summary Get episodes
// @Description Get episodes
// @ID senarioList
// @Tags senario
// @Produce json
// @Success 200 {array} string "Success"
// @Failure 500 {object} dto.ErrorResponse
// @Router /Senario/list [get]
func (c *SenarioController) ListSenario(ctx *gin.Context) {
	log.Info().Msg("listSenario is called")

	ids, err := c.scenarioService.ListScenarios()
	if err != nil {
		log.Error().Err(err).Msg("ListSenario: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, ctx.Request.Method, "Server Error"))
		return
	}
	ctx.JSON(http.StatusOK, ids)
}
