package handlers

import (
	"net/http"

	matchRepo "urbpaddle/database/repository/match"
	"urbpaddle/models"
	"urbpaddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler manages match records.
type MatchHandler struct {
	Repo matchRepo.MatchRepository
}

func NewMatchHandler(repo matchRepo.MatchRepository) *MatchHandler {
	return &MatchHandler{Repo: repo}
}

// CreateMatchHandler records a new match with its (possibly open) player slots.
func (h *MatchHandler) CreateMatchHandler(c *gin.Context) {
	var match models.Match
	if err := c.ShouldBindJSON(&match); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if err := h.Repo.Create(&match); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create match", err.Error())
		return
	}
	c.JSON(http.StatusCreated, match)
}
