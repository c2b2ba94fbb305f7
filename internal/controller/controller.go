package controller

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/kgrc4si/ikgrcscore/docs"
	"github.com/kgrc4si/ikgrcscore/internal/controller/lookup"
	"github.com/kgrc4si/ikgrcscore/internal/controller/scoring"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Controller struct {
	cfg     *config.Config
	scoring *scoring.ScoringController
	senario *lookup.SenarioController
	ranking *lookup.RankingController
}

func NewController(
	cfg *config.Config,
	scoringCtrl *scoring.ScoringController,
	senarioCtrl *lookup.SenarioController,
	rankingCtrl *lookup.RankingController,
) *Controller {
	return &Controller{
		cfg:     cfg,
		scoring: scoringCtrl,
		senario: senarioCtrl,
		ranking: rankingCtrl,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.landing)
	router.Static("/assets", ctrl.cfg.Static.Dir)

	// Senario routes
	router.GET("/Senario/list", ctrl.senario.ListSenario)
	router.GET("/Senario/:id", ctrl.senario.GetSenario)

	// Ranking routes
	router.GET("/Ranking", ctrl.ranking.ListRankings)
	router.GET("/Ranking/:id", ctrl.ranking.GetRank)

	// Question routes
	router.POST("/Q1", ctrl.scoring.Q1)
	router.POST("/Q2", ctrl.scoring.Q2)
	router.POST("/Q3", ctrl.scoring.Q3)
	router.POST("/Q4", ctrl.scoring.Q4)
	router.POST("/Q5", ctrl.scoring.Q5)
	router.POST("/Q6", ctrl.scoring.Q6)
	router.POST("/Q7", ctrl.scoring.Q7)
	router.POST("/Q8", ctrl.scoring.Q8)

	ctrl.registerDocs(router)
}

func (ctrl *Controller) landing(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, ctrl.cfg.Static.LandingPage)
}

// registerDocs exposes the OpenAPI document, Swagger UI and ReDoc.
// Relative links keep the pages working behind the production base path.
func (ctrl *Controller) registerDocs(router *gin.Engine) {
	docs.SwaggerInfo.BasePath = ctrl.cfg.DocsBasePath()
	if u, err := url.Parse(ctrl.cfg.BaseURL()); err == nil {
		docs.SwaggerInfo.Host = u.Host
		docs.SwaggerInfo.Schemes = []string{u.Scheme}
	}

	router.GET("/openapi", func(ctx *gin.Context) {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/swagger-ui", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "swagger/index.html")
	})
	router.GET("/redoc", func(ctx *gin.Context) {
		var page strings.Builder
		if err := redocPage.Execute(&page, redocData{Title: docs.SwaggerInfo.Title, SpecURL: "openapi"}); err != nil {
			_ = ctx.Error(err)
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page.String()))
	})
}

type redocData struct {
	Title   string
	SpecURL string
}

var redocPage = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.Title}}</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="{{.SpecURL}}"></redoc>
  <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>
`))
