package usecase

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx500() decimal.Decimal { return decimal.NewFromInt(500) }

func TestScenario_PayPickupConfirm(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()

	tx := f.paidTransaction(t, 500)
	assert.Equal(t, models.TransactionStatusPaid, tx.Status)
	require.NotNil(t, tx.PaidAt)

	pickup, err := f.uc.GeneratePickupCode(ctx, tx.ID, f.buyer)
	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusGenerated, pickup.Status)
	assert.Len(t, pickup.Code, 6)

	_, err = f.uc.ConfirmPickup(ctx, tx.ID, f.seller, "ZZZZZZ")
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	assert.NotContains(t, err.Error(), pickup.Code)
	assert.Equal(t, models.TransactionStatusPaid, f.repo.status(tx.ID))

	done, err := f.uc.ConfirmPickup(ctx, tx.ID, f.seller, strings.ToLower(pickup.Code))
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	stored, err := f.repo.GetPickup(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PickupStatusConfirmed, stored.Status)

	again, err := f.uc.ConfirmPickup(ctx, tx.ID, f.seller, pickup.Code)
	require.NoError(t, err, "confirming twice with the right code is a no-op")
	assert.Equal(t, models.TransactionStatusCompleted, again.Status)

	_, err = f.uc.ConfirmPickup(ctx, tx.ID, f.seller, "ABCDEF")
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
}

func TestScenario_GeneratePickupTwiceReturnsSameCode(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()
	tx := f.paidTransaction(t, 500)

	first, err := f.uc.GeneratePickupCode(ctx, tx.ID, f.buyer)
	require.NoError(t, err)

	f.uc.codes = fixedCodes{code: "QQQQQQ"}
	second, err := f.uc.GeneratePickupCode(ctx, tx.ID, f.buyer)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)

	_, err = f.uc.GeneratePickupCode(ctx, tx.ID, f.seller)
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestScenario_ExpiredThenLateCapture(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()

	tx, err := f.uc.CreateTransaction(ctx, f.buyer, models.CreateTransactionRequest{
		ListingID: uuid.New(),
		SellerID:  f.seller.ID,
		Amount:    tx500(),
	})
	require.NoError(t, err)
	require.NoError(t, f.repo.SetOrderReference(ctx, tx.ID, "ORD-LATE"))

	f.clock.Advance(25 * time.Hour)
	result, err := f.uc.RunReconciliationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Expired)
	assert.Equal(t, models.TransactionStatusExpired, f.repo.status(tx.ID))

	_, err = f.uc.ApplyEvent(ctx, tx.ID, models.EventPaymentCaptured, models.SystemActor,
		models.EventPayload{OrderReference: "ORD-LATE"})
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
}

func TestScenario_DisputeBlocksAutoCompleteThenRejected(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()
	tx := f.paidTransaction(t, 500)

	dispute, err := f.uc.OpenDispute(ctx, tx.ID, f.buyer, "Item damaged", "Screen was cracked at pickup")
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusOpen, dispute.Status)
	assert.Equal(t, models.TransactionStatusDisputed, f.repo.status(tx.ID))

	_, err = f.uc.OpenDispute(ctx, tx.ID, f.seller, "Counter claim", "Buyer dropped it")
	assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)

	f.clock.Advance(80 * time.Hour)
	result, err := f.uc.RunReconciliationSweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, result.AutoCompleted)
	assert.Equal(t, models.TransactionStatusDisputed, f.repo.status(tx.ID))

	resolved, err := f.uc.ResolveDispute(ctx, dispute.ID, f.admin, models.DisputeStatusRejected,
		"Photos show the screen was intact at handoff")
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusRejected, resolved.Status)
	assert.Equal(t, models.TransactionStatusRejected, f.repo.status(tx.ID))

	actions, err := f.uc.ListAdminActions(ctx, dispute.ID, f.admin)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "REJECT_DISPUTE", actions[0].Action)
	assert.Equal(t, f.admin.ID, actions[0].AdminID)

	// same decision again is a no-op and writes no second audit entry
	_, err = f.uc.ResolveDispute(ctx, dispute.ID, f.admin, models.DisputeStatusRejected,
		"Photos show the screen was intact at handoff")
	require.NoError(t, err)
	actions, _ = f.uc.ListAdminActions(ctx, dispute.ID, f.admin)
	assert.Len(t, actions, 1)

	_, err = f.uc.ResolveDispute(ctx, dispute.ID, f.admin, models.DisputeStatusResolved,
		"Changed my mind about this one")
	assert.ErrorIs(t, err, apperror.ErrInvalidTransition)
}

func TestScenario_AuditFailureKeepsResolution(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()
	tx := f.paidTransaction(t, 500)

	dispute, err := f.uc.OpenDispute(ctx, tx.ID, f.seller, "No show", "Buyer never came to pick up")
	require.NoError(t, err)

	f.repo.adminActionErr = assert.AnError
	resolved, err := f.uc.ResolveDispute(ctx, dispute.ID, f.admin, models.DisputeStatusResolved,
		"Refund issued to buyer after review")
	require.NoError(t, err)
	assert.Equal(t, models.DisputeStatusResolved, resolved.Status)
	assert.Equal(t, models.TransactionStatusResolved, f.repo.status(tx.ID))
	assert.Empty(t, f.repo.actions)
}

func TestScenario_SweepIsIdempotent(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()

	paid := f.paidTransaction(t, 100)
	unpaid, err := f.uc.CreateTransaction(ctx, f.buyer, models.CreateTransactionRequest{
		ListingID: uuid.New(),
		SellerID:  f.seller.ID,
		Amount:    tx500(),
	})
	require.NoError(t, err)

	f.clock.Advance(73 * time.Hour)

	first, err := f.uc.RunReconciliationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SweepResult{Expired: 1, AutoCompleted: 1}, first)
	assert.Equal(t, models.TransactionStatusCompleted, f.repo.status(paid.ID))
	assert.Equal(t, models.TransactionStatusExpired, f.repo.status(unpaid.ID))

	second, err := f.uc.RunReconciliationSweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SweepResult{}, second)
}

func TestScenario_ConfirmRacesAutoComplete(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newMemFixture()
		ctx := context.Background()
		tx := f.paidTransaction(t, 500)
		pickup, err := f.uc.GeneratePickupCode(ctx, tx.ID, f.buyer)
		require.NoError(t, err)
		f.clock.Advance(73 * time.Hour)

		var (
			wg         sync.WaitGroup
			confirmErr error
			sweep      models.SweepResult
			sweepErr   error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, confirmErr = f.uc.ConfirmPickup(ctx, tx.ID, f.buyer, pickup.Code)
		}()
		go func() {
			defer wg.Done()
			sweep, sweepErr = f.uc.RunReconciliationSweep(ctx)
		}()
		wg.Wait()

		require.NoError(t, sweepErr)
		assert.Equal(t, models.TransactionStatusCompleted, f.repo.status(tx.ID))
		if confirmErr == nil {
			assert.Zero(t, sweep.AutoCompleted, "both confirm and auto-complete reported success")
			stored, err := f.repo.GetPickup(ctx, tx.ID)
			require.NoError(t, err)
			assert.Equal(t, models.PickupStatusConfirmed, stored.Status)
		} else {
			assert.ErrorIs(t, confirmErr, apperror.ErrInvalidTransition)
			assert.Equal(t, 1, sweep.AutoCompleted)
		}
		assert.Zero(t, sweep.Failed)
	}
}

func TestScenario_ConcurrentOpenDisputeOneWins(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()
	tx := f.paidTransaction(t, 500)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	reporters := []models.Actor{f.buyer, f.seller}
	for i := range reporters {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.OpenDispute(ctx, tx.ID, reporters[i], "Problem", "Something went wrong")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, apperror.ErrPreconditionFailed)
	}
	assert.Equal(t, 1, succeeded)
}

func TestScenario_ResolveThroughApplyEventKeepsRules(t *testing.T) {
	f := newMemFixture()
	ctx := context.Background()
	tx := f.paidTransaction(t, 500)

	dispute, err := f.uc.OpenDispute(ctx, tx.ID, f.buyer, "Wrong item", "Got a different model")
	require.NoError(t, err)

	for _, resolution := range []string{"no", strings.Repeat("x", 2000)} {
		_, err = f.uc.ApplyEvent(ctx, tx.ID, models.EventRejectDispute, f.admin,
			models.EventPayload{Resolution: resolution})
		assert.ErrorIs(t, err, apperror.ErrValidation)
	}
	assert.Equal(t, models.TransactionStatusDisputed, f.repo.status(tx.ID))
	assert.Empty(t, f.repo.actions)

	rejected, err := f.uc.ApplyEvent(ctx, tx.ID, models.EventRejectDispute, f.admin,
		models.EventPayload{Resolution: "Seller shipped the listed model"})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusRejected, rejected.Status)

	actions, err := f.uc.ListAdminActions(ctx, dispute.ID, f.admin)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "REJECT_DISPUTE", actions[0].Action)
	assert.Equal(t, "Seller shipped the listed model", actions[0].Note)
}
