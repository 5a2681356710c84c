// Package mazeapi provides structures and utilities for serving generated mazes over HTTP.
package mazeapi

// MazeRequest holds the path parameters of a maze request.
type MazeRequest struct {
	Rows int `uri:"rows" binding:"required"`
	Cols int `uri:"cols" binding:"required"`
}

// MazeQuery holds the optional query parameters of a maze request.
type MazeQuery struct {
	Format string `form:"format"`
}

// LocationResponse is a logical cell position.
type LocationResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MazeResponse represents a generated maze in JSON form.
type MazeResponse struct {
	ID    string           `json:"id"`
	Rows  int              `json:"rows"`
	Cols  int              `json:"cols"`
	Start LocationResponse `json:"start"`
	End   LocationResponse `json:"end"`
	Text  string           `json:"text"`
}
