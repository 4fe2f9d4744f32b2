package handlers

import (
	"net/http"

	"github.com/Dosada05/club-records/services"
)

type StatHandler struct {
	statService  services.StatService
	matchService services.MatchService
}

func NewStatHandler(ss services.StatService, ms services.MatchService) *StatHandler {
	return &StatHandler{statService: ss, matchService: ms}
}

// RecordStat godoc
// @Summary Record a player's stats for a match
// @Tags stats
// @Accept json
// @Produce json
// @Param input body services.RecordStatInput true "Stat record"
// @Success 201 {object} map[string]interface{} "Stat record"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /stats [post]
func (h *StatHandler) RecordStat(w http.ResponseWriter, r *http.Request) {
	var input services.RecordStatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.statService.RecordStat(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"stat": stat}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListStats godoc
// @Summary List every stat record in entry order
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Stats"
// @Router /stats [get]
func (h *StatHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statService.ListStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// FormOptions lists the matches a stat can be recorded against.
// @Summary Matches to choose from when recording a stat
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Match options"
// @Router /stats/form-options [get]
func (h *StatHandler) FormOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.matchService.ListMatchOptions(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": options}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
