package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-api/maze"
	"github.com/beka-birhanu/maze-api/service"
	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze resources.
type MazeController struct {
	mazeManager      i.MazeManager
	defaultDimension int
}

// NewMazeController initializes a MazeController. defaultDimension is
// used when a create request omits a width or height.
func NewMazeController(mm i.MazeManager, defaultDimension int) (*MazeController, error) {
	if mm == nil {
		return nil, errors.New("maze controller requires a maze manager")
	}
	return &MazeController{mazeManager: mm, defaultDimension: defaultDimension}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.POST("/import", mc.importLayout)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/solution", mc.solve)
	}
}

// create handles random maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Width == 0 {
		request.Width = mc.defaultDimension
	}
	if request.Height == 0 {
		request.Height = mc.defaultDimension
	}

	id, grid, err := mc.mazeManager.Create(request.Width, request.Height)
	if err != nil {
		// Placement is probabilistic; a retry with a fresh request is
		// legitimate, so signal it as temporary.
		if errors.Is(err, maze.ErrPlacementExhausted) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(id, grid))
}

// importLayout handles registration of externally supplied mazes.
func (mc *MazeController) importLayout(ctx *gin.Context) {
	var request ImportMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, grid, err := mc.mazeManager.Import([]byte(request.Layout))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(id, grid))
}

// get retrieves a stored maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	grid, err := mc.mazeManager.Get(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(id, grid))
}

// solve returns a shortest path through a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	path, err := mc.mazeManager.Solve(id)
	if err != nil {
		if errors.Is(err, service.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no such maze"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// An empty path is a normal outcome for imported mazes whose
	// entrance and exit are not connected.
	response := &SolutionResponse{ID: id, Path: path}
	if response.Path == nil {
		response.Path = []maze.Coordinate{}
	}
	ctx.JSON(http.StatusOK, response)
}
