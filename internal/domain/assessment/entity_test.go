package assessment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftAssessment() *Assessment {
	return &Assessment{
		ID:             "asm-1",
		CycleID:        "cycle-1",
		EmployeeID:     "emp-1",
		CompetencyID:   "comp-1",
		AssessorID:     "emp-2",
		AssessmentType: TypePeer,
		Status:         StatusDraft,
	}
}

func TestSubmitFromDraft(t *testing.T) {
	a := draftAssessment()
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	require.True(t, a.Submit(now))
	assert.Equal(t, StatusSubmitted, a.Status)
	require.NotNil(t, a.SubmittedAt)
	assert.Equal(t, now, *a.SubmittedAt)

	// Resubmission is a no-op
	assert.False(t, a.Submit(now.Add(time.Hour)))
	assert.Equal(t, now, *a.SubmittedAt)
}

func TestApproveRequiresSubmitted(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	a := draftAssessment()
	assert.False(t, a.Approve(now, "mgr-1"))
	assert.Equal(t, StatusDraft, a.Status)
	assert.Nil(t, a.ApprovedAt)

	require.True(t, a.Submit(now))
	require.True(t, a.Approve(now, "mgr-1"))
	assert.Equal(t, StatusApproved, a.Status)
	assert.Equal(t, "mgr-1", *a.ApprovedBy)

	// Terminal: no second approval, no rejection
	assert.False(t, a.Approve(now, "mgr-2"))
	assert.False(t, a.Reject(now, "mgr-2", "changed my mind"))
}

func TestRejectIsTerminal(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	a := draftAssessment()
	require.True(t, a.Submit(now))
	require.True(t, a.Reject(now, "mgr-1", "insufficient evidence"))

	assert.Equal(t, StatusRejected, a.Status)
	assert.Equal(t, "insufficient evidence", *a.RejectionReason)

	// No reopen path exists for a rejected assessment
	assert.False(t, a.Submit(now))
	assert.False(t, a.Approve(now, "mgr-1"))
}

func TestExtendDeadlineOnlyInDraft(t *testing.T) {
	deadline := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	a := draftAssessment()
	require.True(t, a.ExtendDeadline(deadline))
	assert.Equal(t, deadline, *a.ExtendedDeadline)

	require.True(t, a.Submit(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.ExtendDeadline(deadline.AddDate(0, 1, 0)))
	assert.Equal(t, deadline, *a.ExtendedDeadline)
}

func TestEffectiveDeadline(t *testing.T) {
	cycleEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	a := draftAssessment()
	assert.Equal(t, cycleEnd, a.EffectiveDeadline(cycleEnd))

	extended := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	require.True(t, a.ExtendDeadline(extended))
	assert.Equal(t, extended, a.EffectiveDeadline(cycleEnd))
}

func TestIsOverdueOnlyForDrafts(t *testing.T) {
	cycleEnd := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	a := draftAssessment()
	assert.True(t, a.IsOverdue(past, cycleEnd))
	assert.False(t, a.IsOverdue(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), cycleEnd))

	require.True(t, a.Submit(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, a.IsOverdue(past, cycleEnd))
}

func TestRequiresApproval(t *testing.T) {
	peer := draftAssessment()
	assert.False(t, peer.RequiresApproval(decimal.NewFromFloat(2.5)))
	assert.True(t, peer.RequiresApproval(decimal.NewFromFloat(4.0)))
	assert.True(t, peer.RequiresApproval(decimal.NewFromFloat(4.5)))

	mgr := draftAssessment()
	mgr.AssessmentType = TypeManager
	assert.True(t, mgr.RequiresApproval(decimal.NewFromFloat(1.0)))
}

func TestSubmitValidationExtremeRatings(t *testing.T) {
	comment := "consistently exceeds expectations"
	empty := "   "

	cases := []struct {
		name    string
		rating  int
		comment *string
		wantErr bool
	}{
		{"low rating no comments", 2, nil, true},
		{"low rating blank comments", 1, &empty, true},
		{"low rating with comments", 2, &comment, false},
		{"mid rating no comments", 3, nil, false},
		{"high rating no comments", 4, nil, true},
		{"high rating with comments", 5, &comment, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := SubmitAssessmentRequest{ID: "asm-1", Rating: &tc.rating, Comments: tc.comment}
			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitValidationRatingRange(t *testing.T) {
	missing := SubmitAssessmentRequest{ID: "asm-1"}
	assert.Error(t, missing.Validate())

	zero := 0
	outOfRange := SubmitAssessmentRequest{ID: "asm-1", Rating: &zero}
	assert.Error(t, outOfRange.Validate())

	six := 6
	tooHigh := SubmitAssessmentRequest{ID: "asm-1", Rating: &six}
	assert.Error(t, tooHigh.Validate())
}
