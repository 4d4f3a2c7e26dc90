package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/interfaces"
	"weekwise/backend/internal/plan"
)

// BoardHandler handles the plan board endpoints. The board speaks the default
// language for its error messages; it has no per-request language selector.
type BoardHandler struct {
	service interfaces.BoardService
}

func NewBoardHandler(svc interfaces.BoardService) *BoardHandler {
	return &BoardHandler{service: svc}
}

// EditDayRequest is the body of PUT /api/board/days/{day}.
type EditDayRequest struct {
	Field string `json:"field" validate:"required,oneof=content duration notes"`
	Value string `json:"value"`
}

// SetTitleRequest is the body of PUT /api/board/title.
type SetTitleRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

// HandleGetBoard godoc
// @Summary      Get the plan board
// @Description  Returns the current board. A plan waiting in the hand-off slot is merged in and the slot cleared before the board is returned.
// @Tags         Board
// @Produce      json
// @Success      200  {object}  plan.Board
// @Failure      500  {object}  ErrorResponse
// @Router       /board [get]
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Get(r.Context())
	if err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, board)
}

// HandleEditDay godoc
// @Summary      Edit one field of a weekday
// @Description  Overwrites a single field (content, duration or notes) of one canonical weekday slot.
// @Tags         Board
// @Accept       json
// @Produce      json
// @Param        day          path      string          true  "Weekday slot (monday..sunday)"
// @Param        editRequest  body      EditDayRequest  true  "Field and new value"
// @Success      200          {object}  plan.Board
// @Failure      400          {object}  ErrorResponse
// @Router       /board/days/{day} [put]
func (h *BoardHandler) HandleEditDay(w http.ResponseWriter, r *http.Request) {
	slot, ok := plan.ParseSlot(chi.URLParam(r, "day"))
	if !ok {
		respondWithError(w, i18n.DefaultLang, unknownDayError(chi.URLParam(r, "day")))
		return
	}

	var req EditDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, i18n.DefaultLang, validationError(err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}

	field, _ := plan.ParseField(req.Field) // oneof validation already ran
	board, err := h.service.EditDay(r.Context(), slot, field, req.Value)
	if err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, board)
}

// HandleSetTitle godoc
// @Summary      Set the poster title
// @Tags         Board
// @Accept       json
// @Produce      json
// @Param        titleRequest  body      SetTitleRequest  true  "New title"
// @Success      200           {object}  plan.Board
// @Failure      400           {object}  ErrorResponse
// @Router       /board/title [put]
func (h *BoardHandler) HandleSetTitle(w http.ResponseWriter, r *http.Request) {
	var req SetTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, i18n.DefaultLang, validationError(err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}

	board, err := h.service.SetTitle(r.Context(), req.Title)
	if err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, board)
}

// HandleToggleDay godoc
// @Summary      Toggle a weekday's completion checkbox
// @Tags         Board
// @Produce      json
// @Param        day  path      string  true  "Weekday slot (monday..sunday)"
// @Success      200  {object}  plan.Board
// @Failure      400  {object}  ErrorResponse
// @Router       /board/days/{day}/toggle [post]
func (h *BoardHandler) HandleToggleDay(w http.ResponseWriter, r *http.Request) {
	slot, ok := plan.ParseSlot(chi.URLParam(r, "day"))
	if !ok {
		respondWithError(w, i18n.DefaultLang, unknownDayError(chi.URLParam(r, "day")))
		return
	}

	board, err := h.service.ToggleCompleted(r.Context(), slot)
	if err != nil {
		respondWithError(w, i18n.DefaultLang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, board)
}

func unknownDayError(raw string) error {
	return app_errors.New(app_errors.TypeValidation, errors.New("unknown day slot: "+raw))
}
