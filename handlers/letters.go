// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/enstack-letters/letters"
	"github.com/danielhkuo/enstack-letters/logging"
	"github.com/danielhkuo/enstack-letters/middleware"
	"github.com/danielhkuo/enstack-letters/models"
	"github.com/danielhkuo/enstack-letters/validation"
)

const (
	msgNoLetters      = "No letters found in the database"
	msgLetterNotFound = "Letter not found"
	msgDatabaseError  = "Database error"
)

type LetterHandler struct {
	svc *letters.Service
}

func NewLetterHandler(svc *letters.Service) *LetterHandler {
	return &LetterHandler{svc: svc}
}

// ListLetters handles GET /api/letters
func (h *LetterHandler) ListLetters(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.List(r.Context())
	if errors.Is(err, letters.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoLetters)
		return
	}
	if err != nil {
		databaseError(w, r, err, "failed to list letters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LettersResponse{Letters: names})
}

// GetLetter handles GET /api/letter/{letter}
func (h *LetterHandler) GetLetter(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Get(r.Context(), r.PathValue("letter"))
	if errors.Is(err, letters.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgLetterNotFound)
		return
	}
	if err != nil {
		databaseError(w, r, err, "failed to get letter")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewLetterResponse(*l))
}

// AddLetter handles POST /api/letter/add
func (h *LetterHandler) AddLetter(w http.ResponseWriter, r *http.Request) {
	var req models.AddLetterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	if req.Letter != nil {
		trimmed := strings.TrimSpace(*req.Letter)
		req.Letter = &trimmed
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		middleware.ValidationErrorResponse(w, verr)
		return
	}

	l, err := h.svc.AddLetter(r.Context(), letters.NewLetter{
		Letter:  *req.Letter,
		Value:   *req.Value,
		Strokes: *req.Strokes,
		Vowel:   *req.Vowel,
	})
	if errors.Is(err, letters.ErrDuplicate) {
		logging.Ctx(r.Context()).Info().
			Str("letter", *req.Letter).
			Str("rule", letters.RejectedRule(err)).
			Msg("letter rejected")
		middleware.JSONResponse(w, http.StatusBadRequest, models.AddLetterResponse{Status: models.StatusRejected})
		return
	}
	if err != nil {
		databaseError(w, r, err, "failed to add letter")
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("id", l.ID).
		Str("letter", l.Letter).
		Msg("letter created")

	middleware.JSONResponse(w, http.StatusCreated, models.AddLetterResponse{Status: models.StatusCreated})
}

// ShuffleLetters handles GET /api/letter/shuffle
func (h *LetterHandler) ShuffleLetters(w http.ResponseWriter, r *http.Request) {
	shuffled, err := h.svc.Shuffle(r.Context())
	if errors.Is(err, letters.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoLetters)
		return
	}
	if err != nil {
		databaseError(w, r, err, "failed to shuffle letters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShuffleResponse{ShuffledLetters: shuffled})
}

// FilterLetters handles GET /api/letter/filter/{val}
func (h *LetterHandler) FilterLetters(w http.ResponseWriter, r *http.Request) {
	maxValue, ok := parseMaxValue(r.PathValue("val"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoLetters)
		return
	}

	names, err := h.svc.Filter(r.Context(), maxValue)
	if errors.Is(err, letters.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, msgNoLetters)
		return
	}
	if err != nil {
		databaseError(w, r, err, "failed to filter letters")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LettersResponse{Letters: names})
}

// parseMaxValue reads a non-negative decimal {val}. Values too large for an
// int are clamped to math.MaxInt, which matches every letter.
func parseMaxValue(val string) (int, bool) {
	n, err := strconv.Atoi(val)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(val, "-") {
		return math.MaxInt, true
	}
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// decodeRequest reads a JSON object body into dst, a pointer to a request
// struct, reporting per-field type errors. It writes the 400 itself and
// returns false when the body is unusable.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	var raw map[string]json.RawMessage
	if err := middleware.ParseJSONBody(r, &raw); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}

	if verr := validation.DecodeFields(raw, dst); verr != nil {
		middleware.ValidationErrorResponse(w, verr)
		return false
	}
	return true
}

func databaseError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logging.Ctx(r.Context()).Error().Err(err).Msg(msg)
	middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
}
