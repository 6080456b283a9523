package http

import (
	"net/http"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/report"
	"github.com/workstream-hr/workforce-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MissingClockIns(w http.ResponseWriter, r *http.Request)
	BreakViolations(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MissingClockIns implements ReportHandler.
func (h *reportHandlerImpl) MissingClockIns(w http.ResponseWriter, r *http.Request) {
	req := report.MissingClockInRequest{}
	if date := r.URL.Query().Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.reportService.MissingClockIns(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BreakViolations implements ReportHandler.
func (h *reportHandlerImpl) BreakViolations(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.BreakViolations(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
