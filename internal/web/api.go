package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"acadcalc/internal/academic"
	"acadcalc/internal/logger"
	"acadcalc/internal/report"
)

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type groupView struct {
	Index int `json:"index"`
	academic.AgeGroup
}

type levelView struct {
	academic.ProgramLevel
	// nil for the unbounded top level
	MaxHours *float64 `json:"max"`
}

type convertView struct {
	Mode           report.Mode `json:"mode"`
	Group          int         `json:"group"`
	UnitMinutes    int         `json:"unit_minutes"`
	TotalMinutes   float64     `json:"total_minutes"`
	AcademicHours  float64     `json:"academic_hours"`
	RegularMinutes int         `json:"regular_minutes"`
	Hours          int         `json:"hours"`
	Minutes        int         `json:"minutes"`
	Level          *levelView  `json:"level,omitempty"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Get(r.Context()).Error().Err(err).Msg("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Error: &apiError{Code: code, Message: message, RequestID: logger.GetRequestID(r.Context())},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Get(r.Context()).Error().Err(err).Msg("Failed to encode error response")
	}
}

func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, academic.ErrInvalidArgument) {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	logger.Get(r.Context()).Error().Err(err).Msg("Conversion failed")
	respondError(w, r, http.StatusInternalServerError, "internal", "conversion failed")
}

func toLevelView(l academic.ProgramLevel) *levelView {
	v := &levelView{ProgramLevel: l}
	if !l.Unbounded() {
		hi := l.Max
		v.MaxHours = &hi
	}
	return v
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	groups := s.table.Groups()
	out := make([]groupView, len(groups))
	for i, g := range groups {
		out[i] = groupView{Index: i, AgeGroup: g}
	}
	respondJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	levels := academic.Levels()
	out := make([]*levelView, len(levels))
	for i, l := range levels {
		out[i] = toLevelView(l)
	}
	respondJSON(w, r, http.StatusOK, out)
}

// handleConvert runs the engine directly. Input is validated, not clamped.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := report.ParseMode(q.Get("mode"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	group, err := queryInt(q.Get("group"), defaultGroup(s.table))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "group must be an integer")
		return
	}
	g, err := s.table.Group(group)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	view := convertView{Mode: mode, Group: group, UnitMinutes: g.UnitMinutes}

	if mode == report.ToRegular {
		acad, err := queryFloat(q.Get("academic"))
		if err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid_argument", "academic must be a number")
			return
		}
		mins, err := academic.AcademicToRegular(acad, float64(g.UnitMinutes))
		if err != nil {
			respondEngineError(w, r, err)
			return
		}
		view.AcademicHours = acad
		view.RegularMinutes = mins
		view.Hours, view.Minutes = academic.SplitMinutes(mins)
		respondJSON(w, r, http.StatusOK, view)
		return
	}

	total, err := queryFloat(q.Get("minutes"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "minutes must be a number")
		return
	}
	if total < 0 {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "minutes must be >= 0")
		return
	}
	hours, err := queryFloat(q.Get("hours"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "hours must be a number")
		return
	}
	if hours < 0 {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "hours must be >= 0")
		return
	}
	total += hours * 60

	acad, err := academic.RegularToAcademic(total, float64(g.UnitMinutes))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	level, err := academic.ClassifyProgram(acad)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	view.TotalMinutes = total
	view.AcademicHours = acad
	view.Level = toLevelView(level)
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("hours"))
	if raw == "" {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "hours is required")
		return
	}
	hours, err := parseFloat(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid_argument", "hours must be a number")
		return
	}
	level, err := academic.ClassifyProgram(hours)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toLevelView(level))
}

func queryFloat(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return parseFloat(s)
}

func queryInt(s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
