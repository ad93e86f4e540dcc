package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/pkg/retry"
	"github.com/piresc/escrow/services/escrow"
	"github.com/piresc/escrow/services/escrow/mocks"
	"github.com/shopspring/decimal"
)

const testCode = "K7M2QX"

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixedCodes struct{ code string }

func (f fixedCodes) Generate() (string, error) { return f.code, nil }

func testConfig() *models.Config {
	return &models.Config{
		Escrow: models.EscrowConfig{
			Currency:           "IDR",
			PaymentWindow:      24 * time.Hour,
			CompletionWindow:   72 * time.Hour,
			SweepBatchSize:     50,
			PickupMaxAttempts:  5,
			ResolutionMinChars: 10,
			ResolutionMaxChars: 1000,
		},
	}
}

func fastRetrier() *retry.Retrier {
	return retry.New(retry.Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   time.Millisecond,
		Multiplier: 1,
	}, nil)
}

type fixture struct {
	repo      *mocks.MockEscrowRepo
	attempts  *mocks.MockAttemptLimiter
	payment   *mocks.MockPaymentGateway
	publisher *mocks.MockEventPublisher
	clock     *testClock
	uc        *EscrowUC

	buyer  models.Actor
	seller models.Actor
	admin  models.Actor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mocks.NewMockEscrowRepo(ctrl),
		attempts:  mocks.NewMockAttemptLimiter(ctrl),
		payment:   mocks.NewMockPaymentGateway(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
		clock:     &testClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		buyer:     models.Actor{ID: uuid.New(), Role: models.RoleUser},
		seller:    models.Actor{ID: uuid.New(), Role: models.RoleUser},
		admin:     models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
	}
	f.uc = NewEscrowUC(testConfig(), f.repo, f.attempts, f.payment, f.publisher,
		WithClock(f.clock.Now),
		WithCodeGenerator(fixedCodes{code: testCode}),
		WithRetrier(fastRetrier()),
	)
	return f
}

// transaction returns a stored transaction in the given status between the
// fixture's buyer and seller
func (f *fixture) transaction(status models.TransactionStatus) *models.Transaction {
	created := f.clock.Now().Add(-time.Hour)
	expires := created.Add(24 * time.Hour)
	tx := &models.Transaction{
		ID:        uuid.New(),
		ListingID: uuid.New(),
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		Amount:    decimal.NewFromInt(500),
		Currency:  "IDR",
		Status:    status,
		CreatedAt: created,
		UpdatedAt: created,
		ExpiresAt: &expires,
	}
	if status != models.TransactionStatusInitiated {
		ref := "ORD-" + tx.ID.String()[:8]
		tx.OrderReference = &ref
		paid := created.Add(10 * time.Minute)
		tx.PaidAt = &paid
	}
	return tx
}

// committed mimics the store's answer to ApplyTransition
func committed(tx *models.Transaction, t models.Transition) *models.TransitionResult {
	out := *tx
	out.Status = t.To
	out.UpdatedAt = t.At
	if t.To == models.TransactionStatusPaid && t.From != models.TransactionStatusPaid {
		out.PaidAt = &t.At
	}
	if t.To == models.TransactionStatusCompleted {
		out.CompletedAt = &t.At
	}
	result := &models.TransitionResult{Transaction: &out}
	if t.CreatePickup != nil {
		p := *t.CreatePickup
		result.Pickup = &p
	}
	if t.CreateDispute != nil {
		d := *t.CreateDispute
		result.Dispute = &d
	}
	return result
}

// memRepo is an in-memory escrow.EscrowRepo with the same compare-on-status
// semantics as the Postgres store
type memRepo struct {
	mu       sync.Mutex
	txs      map[uuid.UUID]models.Transaction
	pickups  map[uuid.UUID]models.Pickup
	disputes map[uuid.UUID]models.Dispute
	actions  []models.AdminAction

	adminActionErr error
}

func newMemRepo() *memRepo {
	return &memRepo{
		txs:      make(map[uuid.UUID]models.Transaction),
		pickups:  make(map[uuid.UUID]models.Pickup),
		disputes: make(map[uuid.UUID]models.Dispute),
	}
}

var _ escrow.EscrowRepo = (*memRepo)(nil)

func (m *memRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs[tx.ID] = *tx
	return nil
}

func (m *memRepo) GetTransactionByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[id]
	if !ok {
		return nil, escrow.ErrNotFound
	}
	return &tx, nil
}

func (m *memRepo) SetOrderReference(_ context.Context, id uuid.UUID, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[id]
	if !ok || tx.Status != models.TransactionStatusInitiated || tx.OrderReference != nil {
		return escrow.ErrStatusConflict
	}
	tx.OrderReference = &ref
	m.txs[id] = tx
	return nil
}

func (m *memRepo) ApplyTransition(_ context.Context, t models.Transition) (*models.TransitionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx, ok := m.txs[t.TransactionID]
	if !ok || tx.Status != t.From {
		return nil, escrow.ErrStatusConflict
	}

	result := &models.TransitionResult{}
	switch {
	case t.CreatePickup != nil:
		p, exists := m.pickups[tx.ID]
		if !exists {
			p = *t.CreatePickup
			m.pickups[tx.ID] = p
		}
		result.Pickup = &p
	case t.ConfirmPickup:
		p, exists := m.pickups[tx.ID]
		if !exists || p.Status != models.PickupStatusGenerated {
			return nil, escrow.ErrStatusConflict
		}
		p.Status = models.PickupStatusConfirmed
		p.ConfirmedAt = &t.At
		m.pickups[tx.ID] = p
		result.Pickup = &p
	case t.CreateDispute != nil:
		for _, d := range m.disputes {
			if d.TransactionID == tx.ID {
				return nil, escrow.ErrStatusConflict
			}
		}
		d := *t.CreateDispute
		m.disputes[d.ID] = d
		result.Dispute = &d
	case t.CloseDispute != nil:
		d, exists := m.disputes[t.CloseDispute.DisputeID]
		if !exists || d.TransactionID != tx.ID || d.Status != models.DisputeStatusOpen {
			return nil, escrow.ErrStatusConflict
		}
		resolution := t.CloseDispute.Resolution
		resolvedBy := t.CloseDispute.ResolvedBy
		d.Status = t.CloseDispute.Status
		d.Resolution = &resolution
		d.ResolvedBy = &resolvedBy
		d.ResolvedAt = &t.At
		d.UpdatedAt = t.At
		m.disputes[d.ID] = d
		result.Dispute = &d
	}

	tx.Status = t.To
	tx.UpdatedAt = t.At
	if t.To == models.TransactionStatusPaid && t.From != models.TransactionStatusPaid {
		tx.PaidAt = &t.At
	}
	if t.To == models.TransactionStatusCompleted {
		tx.CompletedAt = &t.At
	}
	m.txs[tx.ID] = tx
	result.Transaction = &tx
	return result, nil
}

func (m *memRepo) GetPickup(_ context.Context, id uuid.UUID) (*models.Pickup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.pickups[id]
	if !ok {
		return nil, escrow.ErrNotFound
	}
	return &p, nil
}

func (m *memRepo) GetDisputeByID(_ context.Context, id uuid.UUID) (*models.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.disputes[id]
	if !ok {
		return nil, escrow.ErrNotFound
	}
	return &d, nil
}

func (m *memRepo) GetDisputeByTransactionID(_ context.Context, txID uuid.UUID) (*models.Dispute, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.disputes {
		if d.TransactionID == txID {
			d := d
			return &d, nil
		}
	}
	return nil, escrow.ErrNotFound
}

func (m *memRepo) HasOpenDispute(_ context.Context, txID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasOpenDispute(txID), nil
}

func (m *memRepo) hasOpenDispute(txID uuid.UUID) bool {
	for _, d := range m.disputes {
		if d.TransactionID == txID && d.Status == models.DisputeStatusOpen {
			return true
		}
	}
	return false
}

func (m *memRepo) ListExpirable(_ context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for id, tx := range m.txs {
		if tx.Status == models.TransactionStatusInitiated && tx.ExpiresAt != nil && tx.ExpiresAt.Before(cutoff) {
			ids = append(ids, id)
		}
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (m *memRepo) ListAutoCompletable(_ context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for id, tx := range m.txs {
		if tx.Status == models.TransactionStatusPaid && tx.PaidAt != nil && tx.PaidAt.Before(cutoff) && !m.hasOpenDispute(id) {
			ids = append(ids, id)
		}
		if len(ids) == limit {
			break
		}
	}
	return ids, nil
}

func (m *memRepo) CountByStatus(_ context.Context, statuses []models.TransactionStatus) (map[models.TransactionStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[models.TransactionStatus]int, len(statuses))
	for _, s := range statuses {
		counts[s] = 0
	}
	for _, tx := range m.txs {
		if _, ok := counts[tx.Status]; ok {
			counts[tx.Status]++
		}
	}
	return counts, nil
}

func (m *memRepo) CreateAdminAction(_ context.Context, action *models.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.adminActionErr != nil {
		return m.adminActionErr
	}
	m.actions = append(m.actions, *action)
	return nil
}

func (m *memRepo) ListAdminActions(_ context.Context, disputeID uuid.UUID) ([]*models.AdminAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.AdminAction
	for _, a := range m.actions {
		if a.DisputeID == disputeID {
			a := a
			out = append(out, &a)
		}
	}
	return out, nil
}

func (m *memRepo) status(id uuid.UUID) models.TransactionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.txs[id].Status
}

// memFixture runs the usecase against memRepo with no limiter, gateway or
// publisher
type memFixture struct {
	repo  *memRepo
	clock *testClock
	uc    *EscrowUC

	buyer  models.Actor
	seller models.Actor
	admin  models.Actor
}

func newMemFixture() *memFixture {
	f := &memFixture{
		repo:   newMemRepo(),
		clock:  &testClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		buyer:  models.Actor{ID: uuid.New(), Role: models.RoleUser},
		seller: models.Actor{ID: uuid.New(), Role: models.RoleUser},
		admin:  models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
	}
	f.uc = NewEscrowUC(testConfig(), f.repo, nil, nil, nil,
		WithClock(f.clock.Now),
		WithCodeGenerator(fixedCodes{code: testCode}),
		WithRetrier(fastRetrier()),
	)
	return f
}

// paidTransaction creates a transaction and captures its payment
func (f *memFixture) paidTransaction(t *testing.T, amount int64) *models.Transaction {
	t.Helper()
	ctx := context.Background()
	tx, err := f.uc.CreateTransaction(ctx, f.buyer, models.CreateTransactionRequest{
		ListingID: uuid.New(),
		SellerID:  f.seller.ID,
		Amount:    decimal.NewFromInt(amount),
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	ref := "ORD-" + tx.ID.String()[:8]
	if err := f.repo.SetOrderReference(ctx, tx.ID, ref); err != nil {
		t.Fatalf("set order reference: %v", err)
	}
	paid, err := f.uc.ApplyEvent(ctx, tx.ID, models.EventPaymentCaptured, models.SystemActor,
		models.EventPayload{OrderReference: ref})
	if err != nil {
		t.Fatalf("capture payment: %v", err)
	}
	return paid
}
