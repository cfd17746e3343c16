package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a transaction does not exist or has been deleted.
	ErrNotFound = errors.New("transaction not found")

	// ErrEmptyTitle is returned when a transaction is submitted without a title.
	ErrEmptyTitle = errors.New("transaction title cannot be empty")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	OwnerID string
	Title   string
	Amount  int64

	// Timestamp is honored only by CreateBatch, for imported statements
	// that carry their own dates. Create always stamps creation time.
	Timestamp time.Time
}

type ListFilter struct {
	OwnerID   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create validates the params and persists a new transaction. The timestamp
// is assigned here as creation wall-clock time and is not user-editable.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrEmptyTitle
	}

	tx := &Transaction{
		OwnerID:   params.OwnerID,
		Title:     params.Title,
		Amount:    params.Amount,
		Timestamp: time.Now(),
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// CreateBatch persists a batch of imported transactions. Entries with a blank
// title are rejected up front so a bad row never produces a partial record.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyTitle)
		}
	}

	txs := make([]*Transaction, 0, len(params))

	for _, p := range params {
		ts := p.Timestamp
		if ts.IsZero() {
			ts = time.Now()
		}

		tx := &Transaction{
			OwnerID:   p.OwnerID,
			Title:     p.Title,
			Amount:    p.Amount,
			Timestamp: ts,
		}
		if err := s.repo.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("create transaction %q: %w", p.Title, err)
		}

		txs = append(txs, tx)
	}

	return txs, nil
}
