// Package handler exposes the game service's façade operations over
// HTTP, the thin command layer spec.md §1 treats as a collaborator
// rather than part of the engine itself.
package handler

import (
	"net/http"
	"strconv"

	"shengji-tractor/internal/game/domain"
	"shengji-tractor/internal/game/engine"
	"shengji-tractor/internal/game/service"

	"github.com/gin-gonic/gin"
)

// GameHandler adapts GameService to gin request/response shapes.
type GameHandler struct {
	gameService service.GameService
}

// NewGameHandler builds a handler around a GameService.
func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// RegisterRoutes wires every endpoint onto router.
func (h *GameHandler) RegisterRoutes(router *gin.RouterGroup) {
	games := router.Group("/games")
	{
		games.POST("", h.CreateGame)
		games.GET("/:id", h.GetGameState)
		games.POST("/:id/deal", h.DealNextCard)
		games.POST("/:id/declare", h.DeclareTrump)
		games.POST("/:id/kitty", h.PutbackKitty)
		games.POST("/:id/play", h.PlayCards)
		games.POST("/:id/clear-trick", h.ClearCompletedTrick)
		games.POST("/:id/end-round", h.EndRound)
		games.POST("/:id/next-round", h.PrepareNextRound)
		games.GET("/:id/ai/move", h.GetAIMove)
		games.GET("/:id/ai/kitty", h.GetAIKittySwap)
		games.GET("/:id/ai/declaration", h.GetAITrumpDeclaration)
	}
}

type createGameRequest struct {
	SeatNames  [4]string `json:"seat_names" binding:"required"`
	DealerSeat int       `json:"dealer_seat"`
	TrumpRank  int       `json:"trump_rank"`
	Seed       int64     `json:"seed"`
}

func (h *GameHandler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	state, err := h.gameService.CreateGame(c.Request.Context(), req.SeatNames, req.DealerSeat, domain.Rank(req.TrumpRank), req.Seed)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h *GameHandler) GetGameState(c *gin.Context) {
	state, err := h.gameService.GetGameState(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *GameHandler) DealNextCard(c *gin.Context) {
	state, err := h.gameService.DealNextCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type declareRequest struct {
	PlayerID string                `json:"player_id" binding:"required"`
	Type     domain.DeclarationType `json:"type"`
	Suit     domain.Suit            `json:"suit"`
	Cards    []domain.Card          `json:"cards"`
}

func (h *GameHandler) DeclareTrump(c *gin.Context) {
	var req declareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	decl := domain.Declaration{PlayerID: req.PlayerID, Type: req.Type, Suit: req.Suit, Cards: req.Cards}
	state, err := h.gameService.MakeTrumpDeclaration(c.Request.Context(), c.Param("id"), decl)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type kittyRequest struct {
	PlayerID string        `json:"player_id" binding:"required"`
	Cards    []domain.Card `json:"cards" binding:"required"`
}

func (h *GameHandler) PutbackKitty(c *gin.Context) {
	var req kittyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	state, err := h.gameService.PutbackKittyCards(c.Request.Context(), c.Param("id"), req.PlayerID, req.Cards)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type playRequest struct {
	PlayerID string        `json:"player_id" binding:"required"`
	Cards    []domain.Card `json:"cards" binding:"required"`
}

func (h *GameHandler) PlayCards(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	state, err := h.gameService.ProcessPlay(c.Request.Context(), c.Param("id"), req.PlayerID, req.Cards)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *GameHandler) ClearCompletedTrick(c *gin.Context) {
	state, err := h.gameService.ClearCompletedTrick(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *GameHandler) EndRound(c *gin.Context) {
	outcome, err := h.gameService.EndRound(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

type nextRoundRequest struct {
	Seed int64 `json:"seed"`
}

func (h *GameHandler) PrepareNextRound(c *gin.Context) {
	var req nextRoundRequest
	_ = c.ShouldBindJSON(&req)

	state, err := h.gameService.PrepareNextRound(c.Request.Context(), c.Param("id"), req.Seed)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *GameHandler) GetAIMove(c *gin.Context) {
	seat, err := seatParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	cards, err := h.gameService.GetAIMove(c.Request.Context(), c.Param("id"), seat)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *GameHandler) GetAIKittySwap(c *gin.Context) {
	seat, err := seatParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	cards, err := h.gameService.GetAIKittySwap(c.Request.Context(), c.Param("id"), seat)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *GameHandler) GetAITrumpDeclaration(c *gin.Context) {
	seat, err := seatParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err.Error()))
		return
	}

	decl, ok, err := h.gameService.GetAITrumpDeclaration(c.Request.Context(), c.Param("id"), seat)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"declaration": decl, "declares": ok})
}

func (h *GameHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "table-service"})
}

func (h *GameHandler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "table-service"})
}

func seatParam(c *gin.Context) (int, error) {
	return strconv.Atoi(c.Query("seat"))
}

func errorBody(code, message string) gin.H {
	return gin.H{"code": code, "message": message, "trace_id": ""}
}

// respondErr maps an engine.Error's Kind to an HTTP status, falling
// back to 500 for anything the engine didn't categorize itself.
func respondErr(c *gin.Context, err error) {
	engineErr, ok := err.(*engine.Error)
	if !ok {
		c.JSON(http.StatusInternalServerError, errorBody("INTERNAL_ERROR", err.Error()))
		return
	}

	status := http.StatusInternalServerError
	switch engineErr.Kind {
	case engine.IllegalPlay, engine.IllegalDeclaration:
		status = http.StatusUnprocessableEntity
	case engine.WrongPhase, engine.WrongPlayer:
		status = http.StatusConflict
	case engine.AIFallback:
		status = http.StatusOK
	}
	c.JSON(status, errorBody(engineErr.Kind.String(), engineErr.Error()))
}
