package handlers

import (
	"net/http"

	profileRepo "urbpaddle/database/repository/profile"
	"urbpaddle/models"
	"urbpaddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler manages player profiles and their registered devices.
type ProfileHandler struct {
	Repo profileRepo.ProfileRepository
}

func NewProfileHandler(repo profileRepo.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{Repo: repo}
}

// CreateProfileHandler registers a new player profile.
func (h *ProfileHandler) CreateProfileHandler(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	if err := h.Repo.Create(&profile); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create profile", err.Error())
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// RegisterDeviceHandler registers or refreshes a device push token on a profile.
func (h *ProfileHandler) RegisterDeviceHandler(c *gin.Context) {
	profileID := c.Param("id")

	var device models.Device
	if err := c.ShouldBindJSON(&device); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if device.DeviceID == "" {
		device.DeviceID = uuid.New().String()
	}
	if err := h.Repo.UpsertDevice(profileID, device); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to register device", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deviceId": device.DeviceID})
}
