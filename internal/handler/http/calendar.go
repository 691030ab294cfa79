package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/calendar"
	"github.com/wagedesk/payroll-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	UpsertDay(w http.ResponseWriter, r *http.Request)
	ListDays(w http.ResponseWriter, r *http.Request)
	DeleteDay(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService) CalendarHandler {
	return &calendarHandlerImpl{calendarService: calendarService}
}

func (h *calendarHandlerImpl) UpsertDay(w http.ResponseWriter, r *http.Request) {
	var req calendar.UpsertCalendarDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.calendarService.UpsertDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) ListDays(w http.ResponseWriter, r *http.Request) {
	filter := calendar.ListCalendarFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.calendarService.ListDays(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *calendarHandlerImpl) DeleteDay(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Calendar day ID is required", nil)
		return
	}

	if err := h.calendarService.DeleteDay(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Calendar day removed", nil)
}
