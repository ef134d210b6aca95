// Package http exposes the solver over a small JSON API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-solver/internal/grid"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/solver"
)

// RegisterRoutes attaches the API handlers to the router.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", healthHandler)

	api := r.Group("/api/sudoku")
	{
		api.POST("/solve", solveHandler)
		api.POST("/validate", validateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// solveHandler accepts a 9x9 array of nullable integers 1-9 and returns the
// solved grid.  Malformed boards get 422; boards with no solution get 409.
func solveHandler(c *gin.Context) {
	board, ok := bindBoard(c)
	if !ok {
		return
	}

	solution, solved := solver.Solve(board)
	if !solved {
		c.JSON(http.StatusConflict, gin.H{"error": "no solution found"})
		return
	}
	c.JSON(http.StatusOK, solution.Grid())
}

// validateHandler reports whether the board is already solved, still
// solvable, or provably stuck.
func validateHandler(c *gin.Context) {
	board, ok := bindBoard(c)
	if !ok {
		return
	}

	if solver.KnownUnsolveable(board) {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"reason": "board contains a contradiction",
		})
		return
	}
	if _, solvable := solver.Solve(board); !solvable {
		c.JSON(http.StatusOK, gin.H{
			"valid":  false,
			"reason": "board has no solution",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"solved": solver.IsSolved(board),
	})
}

// bindBoard parses the request body into a board, answering 422 itself on
// any shape or value error.
func bindBoard(c *gin.Context) (puzzle.Board, bool) {
	var rows [][]*int
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return puzzle.Board{}, false
	}

	cells := make([][]int, len(rows))
	for r, row := range rows {
		cells[r] = make([]int, len(row))
		for i, v := range row {
			if v == nil {
				continue
			}
			if *v < 1 || *v > grid.Size {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error": "values must be in range [1, 9]",
				})
				return puzzle.Board{}, false
			}
			cells[r][i] = *v
		}
	}

	board, err := puzzle.FromGrid(cells)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return puzzle.Board{}, false
	}
	return board, true
}
