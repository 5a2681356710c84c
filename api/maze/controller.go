// Package mazeapi handles maze generation requests.
package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/genmaze/service"
	"github.com/beka-birhanu/genmaze/service/i"
	"github.com/gin-gonic/gin"
)

// MazeIDHeader carries the ID of the maze in plain text responses.
const MazeIDHeader = "X-Maze-ID"

// MazeController serves freshly generated mazes.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze generator is nil")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:rows/:cols", mc.generate)
	}
}

// generate handles maze generation requests. The maze is returned as ASCII
// art unless format=json is requested.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindUri(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if query.Format != "" && query.Format != "text" && query.Format != "json" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown format " + query.Format})
		return
	}

	m, err := mc.generator.Generate(request.Rows, request.Cols)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	if query.Format == "json" {
		start, end := m.Grid.Start(), m.Grid.End()
		ctx.JSON(http.StatusOK, &MazeResponse{
			ID:    m.ID.String(),
			Rows:  m.Grid.NumRows(),
			Cols:  m.Grid.NumCols(),
			Start: LocationResponse{Row: start.Row, Col: start.Col},
			End:   LocationResponse{Row: end.Row, Col: end.Col},
			Text:  m.String(),
		})
		return
	}

	ctx.Header(MazeIDHeader, m.ID.String())
	ctx.String(http.StatusOK, "%s", m.String())
}
