package response

import (
	"errors"
	"net/http"

	"github.com/workstream-hr/workforce-backend-go/internal/domain/assessment"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/auth"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/employee"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/leave"
	"github.com/workstream-hr/workforce-backend-go/internal/domain/user"
	"github.com/workstream-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role gate errors
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "You have not clocked in yet")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "You have already clocked out")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "You may not access this attendance session")

	// Assessment cycle errors
	case errors.Is(err, assessment.ErrCycleNotFound):
		NotFound(w, "Assessment cycle not found")
	case errors.Is(err, assessment.ErrCycleNotStartable),
		errors.Is(err, assessment.ErrCycleNotCompletable),
		errors.Is(err, assessment.ErrCycleNotCancellable),
		errors.Is(err, assessment.ErrCycleAlreadyProcessed):
		Conflict(w, err.Error())

	// Assessment errors
	case errors.Is(err, assessment.ErrAssessmentNotFound):
		NotFound(w, "Assessment not found")
	case errors.Is(err, assessment.ErrCompetencyNotFound):
		NotFound(w, "Competency not found")
	case errors.Is(err, assessment.ErrNotAssessor):
		Forbidden(w, "Only the assigned assessor may submit this assessment")
	case errors.Is(err, assessment.ErrAssessmentNotDraft),
		errors.Is(err, assessment.ErrAssessmentNotSubmitted),
		errors.Is(err, assessment.ErrAssessmentAlreadyProcessed):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
