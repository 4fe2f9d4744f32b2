package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/club-records/services"
)

const maxPhotoUploadBytes = 8 << 20

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// Register godoc
// @Summary Register a player
// @Tags players
// @Accept json
// @Produce json
// @Param input body services.RegisterPlayerInput true "Player details"
// @Success 201 {object} map[string]interface{} "Player and confirmation message"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /players [post]
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, message, err := h.playerService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"player": player, "message": message}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{} "Player"
// @Failure 404 {object} map[string]string "Player not found"
// @Router /players/{playerID} [get]
func (h *PlayerHandler) GetPlayerByID(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.GetPlayerByID(r.Context(), playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers godoc
// @Summary List registered players
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{} "Players"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadPhoto godoc
// @Summary Upload a player photo
// @Tags players
// @Accept multipart/form-data
// @Produce json
// @Param playerID path int true "Player ID"
// @Param photo formData file true "JPEG, PNG or WebP image"
// @Success 200 {object} map[string]interface{} "Player with photo URL"
// @Failure 400 {object} map[string]string "Malformed form"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 422 {object} map[string]interface{} "Unsupported content type"
// @Failure 503 {object} map[string]string "Photo storage not configured"
// @Router /players/{playerID}/photo [post]
func (h *PlayerHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to parse multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		badRequestResponse(w, r, fmt.Errorf("failed to get photo file from form: %w", err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		badRequestResponse(w, r, errors.New("content-type header is required for photo"))
		return
	}

	player, err := h.playerService.UploadPhoto(r.Context(), playerID, file, contentType)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
