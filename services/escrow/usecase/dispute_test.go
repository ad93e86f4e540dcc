package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResolution = "Seller showed a signed handoff receipt"

func openDispute(tx *models.Transaction, reporter uuid.UUID) *models.Dispute {
	return &models.Dispute{
		ID:            uuid.New(),
		TransactionID: tx.ID,
		ReporterID:    reporter,
		Subject:       "Item missing",
		Description:   "Seller never handed it over",
		Status:        models.DisputeStatusOpen,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.CreatedAt,
	}
}

func TestOpenDispute(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusCompleted)

	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)
	f.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.Transition) (*models.TransitionResult, error) {
			require.NotNil(t, tr.CreateDispute)
			assert.Equal(t, "Wrong item", tr.CreateDispute.Subject)
			assert.Equal(t, "Got a different phone model", tr.CreateDispute.Description)
			assert.Equal(t, f.seller.ID, tr.CreateDispute.ReporterID)
			assert.Equal(t, models.TransactionStatusDisputed, tr.To)
			return committed(tx, tr), nil
		})
	f.publisher.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)

	dispute, err := f.uc.OpenDispute(context.Background(), tx.ID, f.seller, "  Wrong\titem ", "Got a different\nphone model")
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusOpen, dispute.Status)
}

func TestOpenDispute_BlankText(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusPaid)
	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)

	_, err := f.uc.OpenDispute(context.Background(), tx.ID, f.buyer, " \u0000 ", "details")
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
}

func TestOpenDispute_AlreadyOpen(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusDisputed)
	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)

	_, err := f.uc.OpenDispute(context.Background(), tx.ID, f.buyer, "Again", "Second complaint")
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	assert.Equal(t, "dispute already open", apperror.MessageOf(err))
}

func TestResolveDispute_Validation(t *testing.T) {
	tests := []struct {
		name       string
		admin      func(f *fixture) models.Actor
		action     models.DisputeStatus
		resolution string
		wantErr    error
	}{
		{"not admin", func(f *fixture) models.Actor { return f.buyer }, models.DisputeStatusResolved, validResolution, apperror.ErrForbidden},
		{"system is not admin", func(f *fixture) models.Actor { return models.SystemActor }, models.DisputeStatusResolved, validResolution, apperror.ErrForbidden},
		{"too short", func(f *fixture) models.Actor { return f.admin }, models.DisputeStatusResolved, "ok fine", apperror.ErrValidation},
		{"short after trimming", func(f *fixture) models.Actor { return f.admin }, models.DisputeStatusResolved, "   short     ", apperror.ErrValidation},
		{"too long", func(f *fixture) models.Actor { return f.admin }, models.DisputeStatusRejected, strings.Repeat("a", 1001), apperror.ErrValidation},
		{"open is not a decision", func(f *fixture) models.Actor { return f.admin }, models.DisputeStatusOpen, validResolution, apperror.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.ResolveDispute(context.Background(), uuid.New(), tt.admin(f), tt.action, tt.resolution)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolveDispute_BoundaryLengths(t *testing.T) {
	for _, n := range []int{10, 1000} {
		f := newFixture(t)
		tx := f.transaction(models.TransactionStatusDisputed)
		dispute := openDispute(tx, f.buyer.ID)
		resolution := strings.Repeat("é", n)

		f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil)
		f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)
		f.repo.EXPECT().GetDisputeByTransactionID(gomock.Any(), tx.ID).Return(dispute, nil)
		f.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr models.Transition) (*models.TransitionResult, error) {
				return resolvedResult(tx, dispute, tr), nil
			})
		f.repo.EXPECT().CreateAdminAction(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishDisputeResolved(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.uc.ResolveDispute(context.Background(), dispute.ID, f.admin, models.DisputeStatusResolved, resolution)
		assert.NoError(t, err, "length %d", n)
	}
}

func resolvedResult(tx *models.Transaction, d *models.Dispute, tr models.Transition) *models.TransitionResult {
	result := committed(tx, tr)
	closed := *d
	resolution := tr.CloseDispute.Resolution
	by := tr.CloseDispute.ResolvedBy
	closed.Status = tr.CloseDispute.Status
	closed.Resolution = &resolution
	closed.ResolvedBy = &by
	closed.ResolvedAt = &tr.At
	result.Dispute = &closed
	return result
}

func TestResolveDispute_Success(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusDisputed)
	dispute := openDispute(tx, f.buyer.ID)

	f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil)
	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)
	f.repo.EXPECT().GetDisputeByTransactionID(gomock.Any(), tx.ID).Return(dispute, nil)
	f.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.Transition) (*models.TransitionResult, error) {
			require.NotNil(t, tr.CloseDispute)
			assert.Equal(t, dispute.ID, tr.CloseDispute.DisputeID)
			assert.Equal(t, models.DisputeStatusRejected, tr.CloseDispute.Status)
			assert.Equal(t, f.admin.ID, tr.CloseDispute.ResolvedBy)
			assert.Equal(t, models.TransactionStatusRejected, tr.To)
			return resolvedResult(tx, dispute, tr), nil
		})
	f.repo.EXPECT().CreateAdminAction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.AdminAction) error {
			assert.Equal(t, dispute.ID, a.DisputeID)
			assert.Equal(t, f.admin.ID, a.AdminID)
			assert.Equal(t, "REJECT_DISPUTE", a.Action)
			assert.Equal(t, validResolution, a.Note)
			return nil
		})
	f.publisher.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishDisputeResolved(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.DisputeResolvedEvent) error {
			assert.Equal(t, models.DisputeStatusRejected, ev.Status)
			assert.Equal(t, tx.ID, ev.TransactionID)
			return nil
		})

	got, err := f.uc.ResolveDispute(context.Background(), dispute.ID, f.admin, models.DisputeStatusRejected, validResolution)
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusRejected, got.Status)
	require.NotNil(t, got.Resolution)
	assert.Equal(t, validResolution, *got.Resolution)
}

func TestResolveDispute_AuditFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusDisputed)
	dispute := openDispute(tx, f.buyer.ID)

	f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil)
	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)
	f.repo.EXPECT().GetDisputeByTransactionID(gomock.Any(), tx.ID).Return(dispute, nil)
	f.repo.EXPECT().ApplyTransition(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr models.Transition) (*models.TransitionResult, error) {
			return resolvedResult(tx, dispute, tr), nil
		}).Times(1)
	f.repo.EXPECT().CreateAdminAction(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).Times(3)
	f.publisher.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().PublishDisputeResolved(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.uc.ResolveDispute(context.Background(), dispute.ID, f.admin, models.DisputeStatusResolved, validResolution)
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusResolved, got.Status)
}

func TestResolveDispute_NotFound(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.repo.EXPECT().GetDisputeByID(gomock.Any(), id).Return(nil, escrow.ErrNotFound)

	_, err := f.uc.ResolveDispute(context.Background(), id, f.admin, models.DisputeStatusResolved, validResolution)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestResolveDispute_AlreadyDecided(t *testing.T) {
	t.Run("opposite decision", func(t *testing.T) {
		f := newFixture(t)
		tx := f.transaction(models.TransactionStatusResolved)
		dispute := openDispute(tx, f.buyer.ID)
		dispute.Status = models.DisputeStatusResolved

		f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil)

		_, err := f.uc.ResolveDispute(context.Background(), dispute.ID, f.admin, models.DisputeStatusRejected, validResolution)
		assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
	})

	t.Run("same decision different text", func(t *testing.T) {
		f := newFixture(t)
		tx := f.transaction(models.TransactionStatusResolved)
		dispute := openDispute(tx, f.buyer.ID)
		dispute.Status = models.DisputeStatusResolved
		dispute.Resolution = strPtr(validResolution)

		f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil)
		f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil)
		f.repo.EXPECT().GetDisputeByTransactionID(gomock.Any(), tx.ID).Return(dispute, nil)

		_, err := f.uc.ResolveDispute(context.Background(), dispute.ID, f.admin, models.DisputeStatusResolved, "A completely different reason")
		assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	})
}

func TestGetDispute_Access(t *testing.T) {
	f := newFixture(t)
	tx := f.transaction(models.TransactionStatusDisputed)
	dispute := openDispute(tx, f.buyer.ID)
	stranger := models.Actor{ID: uuid.New(), Role: models.RoleUser}

	f.repo.EXPECT().GetDisputeByID(gomock.Any(), dispute.ID).Return(dispute, nil).Times(3)
	f.repo.EXPECT().GetTransactionByID(gomock.Any(), tx.ID).Return(tx, nil).Times(2)

	got, err := f.uc.GetDispute(context.Background(), dispute.ID, f.seller)
	require.NoError(t, err)
	assert.Equal(t, dispute.ID, got.ID)

	_, err = f.uc.GetDispute(context.Background(), dispute.ID, stranger)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	_, err = f.uc.GetDispute(context.Background(), dispute.ID, f.admin)
	assert.NoError(t, err)
}

func TestListAdminActions(t *testing.T) {
	f := newFixture(t)
	disputeID := uuid.New()

	_, err := f.uc.ListAdminActions(context.Background(), disputeID, f.buyer)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	f.repo.EXPECT().GetDisputeByID(gomock.Any(), disputeID).Return(&models.Dispute{ID: disputeID}, nil)
	f.repo.EXPECT().ListAdminActions(gomock.Any(), disputeID).
		Return([]*models.AdminAction{{ID: uuid.New(), DisputeID: disputeID, Action: "RESOLVE_DISPUTE"}}, nil)

	actions, err := f.uc.ListAdminActions(context.Background(), disputeID, f.admin)
	require.NoError(t, err)
	assert.Len(t, actions, 1)
}
