package scoring

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/service"
	"github.com/rs/zerolog/log"
)

type ScoringController struct {
	submissionService service.SubmissionService
}

func NewScoringController(ss service.SubmissionService) *ScoringController {
	return &ScoringController{submissionService: ss}
}

// submit binds the body into a Submission with answers of type T and answers it.
// The question's database probe runs first, whatever the body holds.
func submit[T any](c *ScoringController, ctx *gin.Context, question string) {
	c.submissionService.RunProbe(ctx.Request.Context(), question)

	var req dto.Submission[T]
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info().Str("question", question).Int("failures", len(verrs)).Msg("Submission rejected")
			ctx.JSON(http.StatusBadRequest, dto.NewInvalidResponse(verrs, req))
			return
		}
		log.Warn().Err(err).Str("question", question).Msg("Failed to bind submission")
		ctx.JSON(http.StatusBadRequest, dto.NewDeserializationFailure(err))
		return
	}

	ctx.JSON(http.StatusOK, c.submissionService.Submit(ctx.Request.Context(), question, req.AnswerCount()))
}

// Q1 godoc
// @Summary Question1
// @Description Show the score and ranking.
// @ID Question1
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q1Answer true "Name/number pairs"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q1 [post]
func (c *ScoringController) Q1(ctx *gin.Context) { submit[[]dto.NamedCount](c, ctx, "Q1") }

// Q2 godoc
// @Summary Question2
// @Description Show the score and ranking.
// @ID Question2
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q2Answer true "Set of name/number pairs"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q2 [post]
func (c *ScoringController) Q2(ctx *gin.Context) { submit[[]dto.NamedCount](c, ctx, "Q2") }

// Q3 godoc
// @Summary Question3
// @Description Show the score and ranking.
// @ID Question3
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q3Answer true "Activity names"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q3 [post]
func (c *ScoringController) Q3(ctx *gin.Context) { submit[[]string](c, ctx, "Q3") }

// Q4 godoc
// @Summary Question4
// @Description Show the score and ranking.
// @ID Question4
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q4Answer true "Activity names"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q4 [post]
func (c *ScoringController) Q4(ctx *gin.Context) { submit[[]string](c, ctx, "Q4") }

// Q5 godoc
// @Summary Question5
// @Description Show the score and ranking.
// @ID Question5
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q5Answer true "Timestamped room/object records"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q5 [post]
func (c *ScoringController) Q5(ctx *gin.Context) { submit[[]dto.RoomObservation](c, ctx, "Q5") }

// Q6 godoc
// @Summary Question6
// @Description Show the score and ranking.
// @ID Question6
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q6Answer true "Free text answer"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q6 [post]
func (c *ScoringController) Q6(ctx *gin.Context) { submit[dto.StringList](c, ctx, "Q6") }

// Q7 godoc
// @Summary Question7
// @Description Show the score and ranking.
// @ID Question7
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q7Answer true "Object relations"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q7 [post]
func (c *ScoringController) Q7(ctx *gin.Context) { submit[[]dto.Relation](c, ctx, "Q7") }

// Q8 godoc
// @Summary Question8
// @Description Show the score and ranking.
// @ID Question8
// @Tags scoring
// @Accept json
// @Produce json
// @Param answer body dto.Q8Answer true "Object state changes"
// @Success 200 {object} dto.SuccessResponse "Success"
// @Failure 400 {object} dto.InvalidResponse "Error in Input"
// @Failure 500 {object} dto.ErrorResponse "Error on Server"
// @Router /Q8 [post]
func (c *ScoringController) Q8(ctx *gin.Context) { submit[[]dto.ObjectChange](c, ctx, "Q8") }
