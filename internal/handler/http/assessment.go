package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/handler/http/response"
)

type AssessmentHandler interface {
	// Cycles
	CreateCycle(w http.ResponseWriter, r *http.Request)
	StartCycle(w http.ResponseWriter, r *http.Request)
	CompleteCycle(w http.ResponseWriter, r *http.Request)
	CancelCycle(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycleProgress(w http.ResponseWriter, r *http.Request)

	// Assessments
	Assign(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	ExtendDeadline(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	GetMyAssessments(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type assessmentHandlerImpl struct {
	cycleService      assessment.CycleService
	assessmentService assessment.AssessmentService
}

func NewAssessmentHandler(cycleService assessment.CycleService, assessmentService assessment.AssessmentService) AssessmentHandler {
	return &assessmentHandlerImpl{
		cycleService:      cycleService,
		assessmentService: assessmentService,
	}
}

// CreateCycle implements AssessmentHandler.
func (h *assessmentHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req assessment.CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.cycleService.CreateCycle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assessment cycle created", result)
}

// StartCycle implements AssessmentHandler.
func (h *assessmentHandlerImpl) StartCycle(w http.ResponseWriter, r *http.Request) {
	var req assessment.StartCycleRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.cycleService.StartCycle(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment cycle started", result)
}

// CompleteCycle implements AssessmentHandler.
func (h *assessmentHandlerImpl) CompleteCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.cycleService.CompleteCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment cycle completed", result)
}

// CancelCycle implements AssessmentHandler.
func (h *assessmentHandlerImpl) CancelCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.cycleService.CancelCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment cycle cancelled", result)
}

// GetCycle implements AssessmentHandler.
func (h *assessmentHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.cycleService.GetCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCycles implements AssessmentHandler.
func (h *assessmentHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	result, err := h.cycleService.ListCycles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCycleProgress implements AssessmentHandler.
func (h *assessmentHandlerImpl) GetCycleProgress(w http.ResponseWriter, r *http.Request) {
	result, err := h.cycleService.GetCycleProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Assign implements AssessmentHandler.
func (h *assessmentHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req assessment.AssignAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assessmentService.AssignAssessment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Assessment assigned", result)
}

// Submit implements AssessmentHandler.
func (h *assessmentHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req assessment.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assessmentService.SubmitAssessment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment submitted", result)
}

// Approve implements AssessmentHandler.
func (h *assessmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.assessmentService.ApproveAssessment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment approved", result)
}

// Reject implements AssessmentHandler.
func (h *assessmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req assessment.RejectAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assessmentService.RejectAssessment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment rejected", result)
}

// ExtendDeadline implements AssessmentHandler.
func (h *assessmentHandlerImpl) ExtendDeadline(w http.ResponseWriter, r *http.Request) {
	var req assessment.ExtendDeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assessmentService.ExtendDeadline(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment deadline extended", result)
}

// Reassign implements AssessmentHandler.
func (h *assessmentHandlerImpl) Reassign(w http.ResponseWriter, r *http.Request) {
	var req assessment.ReassignAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.assessmentService.ReassignAssessor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assessment reassigned", result)
}

func assessmentFilterFromQuery(r *http.Request) assessment.AssessmentFilter {
	filter := assessment.AssessmentFilter{}

	if cycleID := r.URL.Query().Get("cycle_id"); cycleID != "" {
		filter.CycleID = &cycleID
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if assessorID := r.URL.Query().Get("assessor_id"); assessorID != "" {
		filter.AssessorID = &assessorID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if assessmentType := r.URL.Query().Get("assessment_type"); assessmentType != "" {
		filter.AssessmentType = &assessmentType
	}

	filter.Page = 1
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	filter.Limit = 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			filter.Limit = limitNum
		}
	}

	filter.SortBy = r.URL.Query().Get("sort_by")
	filter.SortOrder = r.URL.Query().Get("sort_order")

	return filter
}

// GetMyAssessments implements AssessmentHandler.
func (h *assessmentHandlerImpl) GetMyAssessments(w http.ResponseWriter, r *http.Request) {
	result, err := h.assessmentService.GetMyAssessments(r.Context(), assessmentFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AssessmentHandler.
func (h *assessmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.assessmentService.ListAssessments(r.Context(), assessmentFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
