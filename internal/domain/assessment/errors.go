package assessment

import "errors"

// Assessment domain errors
var (
	// Cycle errors
	ErrCycleNotFound         = errors.New("assessment cycle not found")
	ErrCycleNotStartable     = errors.New("cycle can only be started from planned state on or after its start date")
	ErrCycleNotCompletable   = errors.New("cycle can only be completed while active and inside its date window")
	ErrCycleNotCancellable   = errors.New("cycle can only be cancelled while planned or active")
	ErrCycleAlreadyProcessed = errors.New("cycle has already been completed or cancelled")

	// Assessment errors
	ErrAssessmentNotFound         = errors.New("assessment not found")
	ErrAssessmentNotDraft         = errors.New("assessment is no longer a draft")
	ErrAssessmentNotSubmitted     = errors.New("assessment has not been submitted")
	ErrAssessmentAlreadyProcessed = errors.New("assessment has already been approved or rejected")
	ErrNotAssessor                = errors.New("only the assigned assessor may submit this assessment")

	ErrCompetencyNotFound = errors.New("competency not found")
)
