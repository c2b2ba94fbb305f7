package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/kgrc4si/ikgrcscore/internal/controller/lookup"
	"github.com/kgrc4si/ikgrcscore/internal/controller/scoring"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/kgrc4si/ikgrcscore/internal/repository"
	"github.com/kgrc4si/ikgrcscore/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

type countingProbe struct {
	calls int
}

func (p *countingProbe) Run(context.Context) (int, error) {
	p.calls++
	return 0, nil
}

func (p *countingProbe) Migrate() error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, *countingProbe) {
	t.Helper()

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "Test0.html"), []byte("<html>landing</html>"), 0o644))

	cfg := &config.Config{
		Server:   config.Server{Port: "7000", IsDevSystem: true},
		Database: config.Database{ProbeQuestions: []string{"Q1"}, MaxOpenConns: 1},
		Static:   config.Static{Dir: static, LandingPage: "assets/Test0.html"},
	}

	router, err := NewGinEngine(cfg)
	require.NoError(t, err)

	probe := &countingProbe{}
	ctrl := NewController(cfg,
		scoring.NewScoringController(service.NewSubmissionService(probe, cfg.Database.ProbeQuestions)),
		lookup.NewSenarioController(service.NewScenarioService(repository.NewScenarioRepository())),
		lookup.NewRankingController(service.NewRankingService(repository.NewRankingRepository())),
	)
	ctrl.RegisterRoutes(router)
	return router, probe
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const successBody = `{"statusCode":200,"method":"POST","message":"Succeed","data":{"score":0.3,"rank":3}}`

var validBodies = map[string]string{
	"/Q1": `{"name":"Takanori Ugai","senario":"Senario1","answers":[{"name":"Kitchen","number":2}]}`,
	"/Q2": `{"name":"Takanori Ugai","senario":"Senario1","answers":[{"name":"Kitchen","number":2},{"name":"Bedroom","number":1}]}`,
	"/Q3": `{"name":"Takanori Ugai","senario":"Senario1","answers":["WALK","GRAB"]}`,
	"/Q4": `{"name":"Takanori Ugai","senario":"Senario1","answers":["WALK"]}`,
	"/Q5": `{"name":"Takanori Ugai","senario":"Senario1","answers":[{"time":"2022-01-01T00:00:20.005","room":"LivingRoom","obj":"Cup"}]}`,
	"/Q6": `{"name":"Takanori Ugai","senario":"Senario1","answers":"Grab"}`,
	"/Q7": `{"name":"Takanori Ugai","senario":"Senario1","answers":[{"obj1":"Table","obj2":"Cup","relation":"ON"}]}`,
	"/Q8": `{"name":"Takanori Ugai","senario":"Senario1","answers":[{"name":"Table","change":[{"place":[1.1,2.5,3.2],"status":["ON"]}]}]}`,
}

func TestSubmitValid(t *testing.T) {
	router, _ := newTestRouter(t)

	for path, body := range validBodies {
		t.Run(path, func(t *testing.T) {
			w := do(router, http.MethodPost, path, body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, successBody, w.Body.String())
		})
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	router, _ := newTestRouter(t)

	first := do(router, http.MethodPost, "/Q3", validBodies["/Q3"])
	second := do(router, http.MethodPost, "/Q3", validBodies["/Q3"])
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestSubmitAllBlank(t *testing.T) {
	router, _ := newTestRouter(t)
	want := []string{"Name must not be empty", "Senario must not be empty", "Answers must not be empty"}

	cases := map[string]string{}
	for path := range validBodies {
		cases[path] = `{"name":"","senario":"","answers":[]}`
	}
	cases["/Q6 blank text"] = `{"name":"","senario":"","answers":"  "}`

	for name, body := range cases {
		path := strings.Fields(name)[0]
		t.Run(name, func(t *testing.T) {
			w := do(router, http.MethodPost, path, body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.InvalidResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			got := make([]string, 0, len(resp.RequestBody))
			for _, fe := range resp.RequestBody {
				got = append(got, fe.Message)
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestSubmitPartiallyInvalid(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/Q7", `{"name":"Takanori Ugai","senario":"  ","answers":[{"obj1":"Table","obj2":"Cup","relation":"ON"}]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.InvalidResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.RequestBody, 1)
	assert.Equal(t, "Senario must not be empty", resp.RequestBody[0].Message)
	assert.Equal(t, map[string]any{}, resp.RequestBody[0].Args)
}

func TestSubmitMissingAnswers(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/Q1", `{"name":"Takanori Ugai","senario":"Senario1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Answers must not be empty")
	assert.NotContains(t, w.Body.String(), "Name must not be empty")
}

func TestSubmitMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/Q3", `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.InvalidResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.RequestBody, 1)
	assert.Equal(t, dto.MessageDeserializationFailed, resp.RequestBody[0].Message)
}

func TestDatabaseQueryRunsOnlyForConfiguredQuestions(t *testing.T) {
	router, probe := newTestRouter(t)

	do(router, http.MethodPost, "/Q3", validBodies["/Q3"])
	assert.Equal(t, 0, probe.calls)

	do(router, http.MethodPost, "/Q1", validBodies["/Q1"])
	assert.Equal(t, 1, probe.calls)

	do(router, http.MethodPost, "/Q1", `{"name":"","senario":"","answers":[]}`)
	assert.Equal(t, 2, probe.calls, "the query runs before the body is checked")

	do(router, http.MethodPost, "/Q1", `{"name":`)
	assert.Equal(t, 3, probe.calls)
}

func TestSubmitTypeMismatchHidesGoTypes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodPost, "/Q3", `{"name":"A","senario":"B","answers":"WALK"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"REQUEST_BODY":[{"message":"DESERIALIZATION_FAILED","args":{},"value":"answers: unexpected JSON string"}]}`,
		w.Body.String())
}

func TestSenarioRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/Senario/list", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["test1","test2"]`, w.Body.String())

	w = do(router, http.MethodGet, "/Senario/Senario1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"statusCode":200,"method":"GET","message":"Succeed","data":{"id":"Senario1","title":"Senario1","scene":1,"activities":["Test"]}}`,
		w.Body.String())
}

func TestRankingRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/Ranking", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"TeamB","rank":3,"score":0.3}]`, w.Body.String())

	w = do(router, http.MethodGet, "/Ranking/TeamC", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"TeamC","rank":3,"score":0.3}`, w.Body.String())
}

func TestLandingAndStatic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/assets/Test0.html", w.Header().Get("Location"))

	w = do(router, http.MethodGet, "/assets/Test0.html", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "landing")
}

func TestDocsRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/openapi", "")
	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Host     string                    `json:"host"`
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "localhost:7000", doc.Host)
	assert.Equal(t, "/", doc.BasePath)
	for _, p := range []string{"/Q1", "/Q8", "/Senario/list", "/Senario/{id}", "/Ranking", "/Ranking/{id}"} {
		assert.Contains(t, doc.Paths, p)
	}

	w = do(router, http.MethodGet, "/redoc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `spec-url="openapi"`)

	w = do(router, http.MethodGet, "/swagger-ui", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/swagger/index.html", w.Header().Get("Location"))
}

func TestPanicIsRecovered(t *testing.T) {
	router, _ := newTestRouter(t)
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := do(router, http.MethodGet, "/boom", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"statusCode":500,"method":"GET","message":"Server Error","data":{}}`, w.Body.String())

	w = do(router, http.MethodGet, "/Ranking", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Endpoint GET /nope not found", resp.Message)
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, http.MethodGet, "/Ranking", "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/Ranking", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get(requestIDHeader))
}
