package handlers

import (
	"net/http"

	"github.com/Dosada05/club-records/services"
)

type MatchHandler struct {
	matchService services.MatchService
	clock        services.Clock
}

func NewMatchHandler(ms services.MatchService, clock services.Clock) *MatchHandler {
	return &MatchHandler{matchService: ms, clock: clock}
}

// CreateMatch godoc
// @Summary Create a match
// @Tags matches
// @Accept json
// @Produce json
// @Param input body services.MatchInput true "Match fields, date as YYYY-MM-DD"
// @Success 201 {object} map[string]interface{} "Created match"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{} "Match"
// @Failure 404 {object} map[string]string "Match not found"
// @Router /matches/{matchID} [get]
func (h *MatchHandler) GetMatchByID(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatchByID(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMatch godoc
// @Summary Replace every field of a match
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body services.MatchInput true "Match fields, date as YYYY-MM-DD"
// @Success 200 {object} map[string]interface{} "Updated match"
// @Failure 400 {object} map[string]string "Malformed body or id"
// @Failure 404 {object} map[string]string "Match not found"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /matches/{matchID} [put]
func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.UpdateMatch(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListMatches godoc
// @Summary List every match, newest date first
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{} "Matches"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPastMatches godoc
// @Summary List matches dated before today
// @Tags matches
// @Produce json
// @Param date query string false "Evaluate as of this YYYY-MM-DD day"
// @Success 200 {object} map[string]interface{} "as_of and matches"
// @Failure 422 {object} map[string]interface{} "Malformed date"
// @Router /matches/past [get]
func (h *MatchHandler) ListPastMatches(w http.ResponseWriter, r *http.Request) {
	today, err := dayFromRequest(r, h.clock)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	matches, err := h.matchService.ListPastMatches(r.Context(), today)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"as_of": today, "matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListUpcomingMatches godoc
// @Summary List matches dated today or later
// @Tags matches
// @Produce json
// @Param date query string false "Evaluate as of this YYYY-MM-DD day"
// @Success 200 {object} map[string]interface{} "as_of and matches"
// @Failure 422 {object} map[string]interface{} "Malformed date"
// @Router /matches/upcoming [get]
func (h *MatchHandler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	today, err := dayFromRequest(r, h.clock)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	matches, err := h.matchService.ListUpcomingMatches(r.Context(), today)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"as_of": today, "matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
