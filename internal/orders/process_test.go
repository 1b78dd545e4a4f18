package orders

import (
	"testing"
	"time"

	"kiosk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(v int) *int          { return &v }
func fptr(v float64) *float64  { return &v }
func uptr(v uint) *uint        { return &v }

func newProcess() *models.OrderProcess {
	return &models.OrderProcess{
		ProcessNumber: "OP-20260210-001",
		CurrentStep:   1,
		Status:        models.ProcessStatusInProgress,
		Acquisition:   models.AcquisitionPurchase,
		Quantity:      iptr(3),
		ModelType:     "KSK-500",
	}
}

var now = time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

func TestCompleteStepAdvancesInOrder(t *testing.T) {
	p := newProcess()
	p.ApprovalRequestID = "APR-42"
	p.ApprovalStatus = models.ApprovalStatusApproved

	for step := 1; step <= 5; step++ {
		require.NoError(t, CompleteStep(p, step, now, "tanaka"))
	}

	assert.Equal(t, models.ProcessStatusCompleted, p.Status)
	require.NotNil(t, p.Step5CompletedAt)
	assert.Equal(t, "tanaka", p.Step5CompletedBy)
	// 5. adım pointer'ı ilerletmez, süreci kapatır
	assert.Equal(t, 5, p.CurrentStep)
}

func TestCompleteStepRejectsOutOfOrder(t *testing.T) {
	p := newProcess()

	err := CompleteStep(p, 3, now, "tanaka")
	require.Error(t, err)

	// Başarısız deneme süreci değiştirmez
	assert.Equal(t, 1, p.CurrentStep)
	assert.Nil(t, p.Step3CompletedAt)
}

func TestCompleteStepRejectsInvalidStep(t *testing.T) {
	p := newProcess()

	assert.Error(t, CompleteStep(p, 0, now, "tanaka"))
	assert.Error(t, CompleteStep(p, 6, now, "tanaka"))
}

func TestStep1RequiresQuantityAndModel(t *testing.T) {
	p := newProcess()
	p.Quantity = nil
	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))

	p = newProcess()
	p.Quantity = iptr(0)
	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))

	p = newProcess()
	p.ModelType = ""
	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))
}

func TestStep1LeaseRequiresLeaseTerms(t *testing.T) {
	p := newProcess()
	p.Acquisition = models.AcquisitionLease

	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))

	p.LeaseCompanyID = uptr(4)
	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))

	p.LeaseMonthlyFee = fptr(12.5)
	assert.Error(t, CompleteStep(p, 1, now, "tanaka"))

	p.LeasePeriod = iptr(36)
	assert.NoError(t, CompleteStep(p, 1, now, "tanaka"))
	assert.Equal(t, 2, p.CurrentStep)
}

func TestStep3RequiresApprovalRequestID(t *testing.T) {
	p := newProcess()
	require.NoError(t, CompleteStep(p, 1, now, "tanaka"))
	require.NoError(t, CompleteStep(p, 2, now, "tanaka"))

	err := CompleteStep(p, 3, now, "tanaka")
	require.Error(t, err)
	assert.Equal(t, 3, p.CurrentStep)

	p.ApprovalRequestID = "APR-42"
	assert.NoError(t, CompleteStep(p, 3, now, "tanaka"))
}

func TestStep4IsHardApprovalGate(t *testing.T) {
	p := newProcess()
	p.ApprovalRequestID = "APR-42"
	require.NoError(t, CompleteStep(p, 1, now, "tanaka"))
	require.NoError(t, CompleteStep(p, 2, now, "tanaka"))
	require.NoError(t, CompleteStep(p, 3, now, "tanaka"))

	// PENDING ve REJECTED ilerleyemez
	err := CompleteStep(p, 4, now, "tanaka")
	assert.ErrorIs(t, err, ErrApprovalRequired)

	p.ApprovalStatus = models.ApprovalStatusRejected
	err = CompleteStep(p, 4, now, "tanaka")
	assert.ErrorIs(t, err, ErrApprovalRequired)
	assert.Equal(t, 4, p.CurrentStep)
	assert.Nil(t, p.Step4CompletedAt)

	p.ApprovalStatus = models.ApprovalStatusApproved
	assert.NoError(t, CompleteStep(p, 4, now, "tanaka"))
	assert.Equal(t, 5, p.CurrentStep)
}

func TestCompleteStepRejectsInactiveProcess(t *testing.T) {
	p := newProcess()
	p.Status = models.ProcessStatusCancelled
	assert.ErrorIs(t, CompleteStep(p, 1, now, "tanaka"), ErrProcessNotActive)

	p.Status = models.ProcessStatusCompleted
	assert.ErrorIs(t, CompleteStep(p, 1, now, "tanaka"), ErrProcessNotActive)
}

func TestCancel(t *testing.T) {
	p := newProcess()
	require.NoError(t, Cancel(p))
	assert.Equal(t, models.ProcessStatusCancelled, p.Status)

	p.Status = models.ProcessStatusCompleted
	assert.Error(t, Cancel(p))
}
