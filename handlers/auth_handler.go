package handlers

import (
	"net/http"

	"github.com/Dosada05/club-records/services"
)

type AuthHandler struct {
	playerService services.PlayerService
}

func NewAuthHandler(playerService services.PlayerService) *AuthHandler {
	return &AuthHandler{playerService: playerService}
}

// Login checks a claimed (name, jersey number) identity. An unknown identity
// is answered with authenticated=false and a message, not an error status.
// @Summary Verify a player by name and jersey number
// @Tags auth
// @Accept json
// @Produce json
// @Param input body services.LoginInput true "Claimed identity"
// @Success 200 {object} map[string]interface{} "authenticated flag with the player or a message"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, found, err := h.playerService.VerifyIdentity(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"authenticated": found}
	if found {
		response["player"] = player
	} else {
		response["message"] = services.LoginFailedMessage
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
