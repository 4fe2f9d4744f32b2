package handlers

import (
	"net/http"

	"github.com/Dosada05/club-records/services"
)

type ReportHandler struct {
	reportService services.ReportService
	clock         services.Clock
}

func NewReportHandler(rs services.ReportService, clock services.Clock) *ReportHandler {
	return &ReportHandler{reportService: rs, clock: clock}
}

// Summary godoc
// @Summary Count total, past and upcoming matches
// @Tags reports
// @Produce json
// @Param date query string false "Evaluate as of this YYYY-MM-DD day"
// @Success 200 {object} map[string]interface{} "as_of and summary"
// @Failure 422 {object} map[string]interface{} "Malformed date"
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	today, err := dayFromRequest(r, h.clock)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	counts, err := h.reportService.SummaryCounts(r.Context(), today)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"as_of": today, "summary": counts}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Locations godoc
// @Summary Count matches per location
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Locations"
// @Router /reports/locations [get]
func (h *ReportHandler) Locations(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reportService.LocationBreakdown(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"locations": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Players godoc
// @Summary Per-player totals from stat records
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{} "Players"
// @Router /reports/players [get]
func (h *ReportHandler) Players(w http.ResponseWriter, r *http.Request) {
	totals, err := h.reportService.PlayerTotals(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": totals}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Overview godoc
// @Summary Summary, locations and player totals in one response
// @Tags reports
// @Produce json
// @Param date query string false "Evaluate as of this YYYY-MM-DD day"
// @Success 200 {object} models.ClubOverview
// @Failure 422 {object} map[string]interface{} "Malformed date"
// @Router /reports/overview [get]
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	today, err := dayFromRequest(r, h.clock)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	overview, err := h.reportService.Overview(r.Context(), today)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MatchDetail godoc
// @Summary A match with its stat records
// @Tags reports
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} models.MatchDetail
// @Failure 404 {object} map[string]string "Match not found"
// @Router /matches/{matchID}/stats [get]
func (h *ReportHandler) MatchDetail(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.reportService.MatchDetail(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, detail, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
