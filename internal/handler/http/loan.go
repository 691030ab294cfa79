package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wagedesk/payroll-backend-go/internal/domain/loan"
	"github.com/wagedesk/payroll-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetRepayments(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &loanHandlerImpl{loanService: loanService}
}

func (h *loanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req loan.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.loanService.CreateLoan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan application submitted", result)
}

func (h *loanHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	result, err := h.loanService.GetLoan(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *loanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := loan.LoanFilter{
		Page:  1,
		Limit: 20,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	filter.EmployeeID = r.URL.Query().Get("employee_id")
	filter.Status = r.URL.Query().Get("status")

	result, total, err := h.loanService.ListLoans(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(filter.Page, filter.Limit, total))
}

func (h *loanHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	var req loan.UpdateLoanStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.loanService.UpdateLoanStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *loanHandlerImpl) GetRepayments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	result, err := h.loanService.GetRepayments(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
