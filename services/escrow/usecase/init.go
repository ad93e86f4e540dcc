package usecase

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/pkg/pickupcode"
	"github.com/piresc/escrow/internal/pkg/retry"
	"github.com/piresc/escrow/services/escrow"
)

// CodeGenerator issues pickup codes
type CodeGenerator interface {
	Generate() (string, error)
}

// EscrowUC implements escrow.EscrowUC
type EscrowUC struct {
	cfg       *models.Config
	repo      escrow.EscrowRepo
	attempts  escrow.AttemptLimiter
	payment   escrow.PaymentGateway
	publisher escrow.EventPublisher

	codes   CodeGenerator
	retrier *retry.Retrier
	nrApp   *newrelic.Application
	now     func() time.Time
}

// Option customizes an EscrowUC
type Option func(*EscrowUC)

// WithClock replaces the wall clock used by transition guards
func WithClock(now func() time.Time) Option {
	return func(uc *EscrowUC) {
		uc.now = now
	}
}

// WithCodeGenerator replaces the crypto/rand pickup code generator
func WithCodeGenerator(g CodeGenerator) Option {
	return func(uc *EscrowUC) {
		uc.codes = g
	}
}

// WithRetrier sets the retrier used for best-effort audit writes
func WithRetrier(r *retry.Retrier) Option {
	return func(uc *EscrowUC) {
		uc.retrier = r
	}
}

// WithNewRelic reports reconciliation runs as background transactions
func WithNewRelic(app *newrelic.Application) Option {
	return func(uc *EscrowUC) {
		uc.nrApp = app
	}
}

// NewEscrowUC creates a new escrow use case
func NewEscrowUC(
	cfg *models.Config,
	repo escrow.EscrowRepo,
	attempts escrow.AttemptLimiter,
	payment escrow.PaymentGateway,
	publisher escrow.EventPublisher,
	opts ...Option,
) *EscrowUC {
	uc := &EscrowUC{
		cfg:       cfg,
		repo:      repo,
		attempts:  attempts,
		payment:   payment,
		publisher: publisher,
		codes:     pickupcode.NewGenerator(),
		now:       models.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.retrier == nil {
		uc.retrier = retry.NewWithDefaults(logger.GetGlobalLogger())
	}
	return uc
}

var _ escrow.EscrowUC = (*EscrowUC)(nil)
