package mazeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/playback"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultMazeSize = 10
	writeTimeout    = 3 * time.Second
)

// MazeController serves maze solving, generation, storage and playback.
type MazeController struct {
	mazeService i.MazeService
	player      *playback.Player
	logger      *log.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, p *playback.Player, l *log.Logger) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	if p == nil {
		p = playback.NewPlayer(playback.DefaultDelay)
	}
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	l.Printf("%s[INFO]%s playback delay %s", config.LogInfoColor, config.LogColorReset, p.Delay())
	return &MazeController{
		mazeService: ms,
		player:      p,
		logger:      l,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/solve", mc.solve)
		mazes.GET("/generate", mc.generate)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.save)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/solution", mc.solutionByID)
		mazes.GET("/:ID/playback", mc.playback)
	}
}

// solve handles ad hoc solve requests.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request RowsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sol, err := mc.mazeService.Solve(ctx.Request.Context(), request.Rows)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(sol))
}

// generate builds a random maze from the width, height and seed query parameters.
func (mc *MazeController) generate(ctx *gin.Context) {
	width, err := intQuery(ctx, "width", defaultMazeSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	height, err := intQuery(ctx, "height", defaultMazeSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if raw, ok := ctx.GetQuery("seed"); ok {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
	}

	rows, sol, err := mc.mazeService.Generate(ctx.Request.Context(), width, height, seed)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &GenerateResponse{
		Seed:     seed,
		Rows:     rows,
		Solution: newSolutionResponse(sol),
	})
}

// save stores a maze.
func (mc *MazeController) save(ctx *gin.Context) {
	var request RowsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.mazeService.Save(ctx.Request.Context(), request.Rows)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, &SaveResponse{ID: id.String()})
}

// byID returns a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mc.idParam(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// solutionByID solves a stored maze.
func (mc *MazeController) solutionByID(ctx *gin.Context) {
	id, ok := mc.idParam(ctx)
	if !ok {
		return
	}

	sol, err := mc.mazeService.SolveByID(ctx.Request.Context(), id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSolutionResponse(sol))
}

// playback streams the solution of a stored maze over a websocket, one step
// per tick, then closes the connection normally.
func (mc *MazeController) playback(ctx *gin.Context) {
	id, ok := mc.idParam(ctx)
	if !ok {
		return
	}

	sol, err := mc.mazeService.SolveByID(ctx.Request.Context(), id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	conn, err := websocket.Accept(ctx.Writer, ctx.Request, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		mc.logger.Printf("%s[ERROR]%s accepting playback socket: %v", config.LogErrorColor, config.LogColorReset, err)
		return
	}

	// CloseRead discards client frames and cancels streamCtx when the peer goes away.
	streamCtx := conn.CloseRead(ctx.Request.Context())
	err = mc.player.Play(streamCtx, sol.Path, func(step playback.Step) error {
		data, err := json.Marshal(step)
		if err != nil {
			return err
		}
		writeCtx, cancel := context.WithTimeout(streamCtx, writeTimeout)
		defer cancel()
		return conn.Write(writeCtx, websocket.MessageText, data)
	})
	if err != nil {
		mc.logger.Printf("%s[ERROR]%s playback of %s interrupted: %v", config.LogErrorColor, config.LogColorReset, id, err)
		_ = conn.Close(websocket.StatusGoingAway, "playback interrupted")
		return
	}

	_ = conn.Close(websocket.StatusNormalClosure, sol.Status.String())
}

// idParam parses the ID path parameter, answering 400 when it is not a uuid.
func (mc *MazeController) idParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// fail maps service errors to HTTP status codes.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrMazeTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, maze.ErrMalformedInput),
		errors.Is(err, generator.ErrInvalidDimensions),
		errors.Is(err, generator.ErrInvalidOpening):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	default:
		mc.logger.Printf("%s[ERROR]%s %s %s: %v", config.LogErrorColor, config.LogColorReset, ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// intQuery reads an optional integer query parameter.
func intQuery(ctx *gin.Context, name string, def int) (int, error) {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}
