package mazeapi

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/genmaze/maze"
	"github.com/beka-birhanu/genmaze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}

type failingGenerator struct{}

func (failingGenerator) Generate(int, int) (*maze.Maze, error) {
	return nil, errors.New("boom")
}

func newEngine(t *testing.T, c *MazeController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	c.RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func serve(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(rec, req)
	return rec
}

func TestMazeController(t *testing.T) {
	svc, err := service.NewMazeService(rand.New(rand.NewSource(5)), nopLogger{}, 50)
	require.NoError(t, err)
	controller, err := NewMazeController(svc)
	require.NoError(t, err)
	engine := newEngine(t, controller)

	t.Run("Serves ASCII art by default", func(t *testing.T) {
		rec := serve(engine, "/api/v1/mazes/3/4")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		_, err := uuid.Parse(rec.Header().Get(MazeIDHeader))
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
		require.Len(t, lines, 2+2*3)
		assert.Equal(t, "3 4", lines[0])
		assert.Contains(t, lines[2], " S ")
		assert.Contains(t, lines[6], " E ")
	})

	t.Run("Serves JSON on request", func(t *testing.T) {
		rec := serve(engine, "/api/v1/mazes/2/5?format=json")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Rows)
		assert.Equal(t, 5, resp.Cols)
		assert.Equal(t, LocationResponse{Row: 0, Col: 0}, resp.Start)
		assert.Equal(t, LocationResponse{Row: 1, Col: 4}, resp.End)
		assert.True(t, strings.HasPrefix(resp.Text, "2 5\n"))
		_, err := uuid.Parse(resp.ID)
		assert.NoError(t, err)
	})

	t.Run("Rejects bad parameters", func(t *testing.T) {
		for _, target := range []string{
			"/api/v1/mazes/abc/4",
			"/api/v1/mazes/0/4",
			"/api/v1/mazes/-3/4",
			"/api/v1/mazes/3/51",
			"/api/v1/mazes/3/3?format=xml",
		} {
			rec := serve(engine, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Contains(t, rec.Body.String(), "error", target)
		}
	})

	t.Run("Reports generator failures", func(t *testing.T) {
		failing, err := NewMazeController(failingGenerator{})
		require.NoError(t, err)

		rec := serve(newEngine(t, failing), "/api/v1/mazes/3/3")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil)
	assert.Error(t, err)
}
