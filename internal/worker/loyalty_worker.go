package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LoyaltyWorker credits earned points to the customer's balance.
type LoyaltyWorker struct {
	customers repository.CustomerRepository
}

func NewLoyaltyWorker(customers repository.CustomerRepository) *LoyaltyWorker {
	return &LoyaltyWorker{customers: customers}
}

func (w *LoyaltyWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var job LoyaltyJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("malformed loyalty payload: %w", err)
	}
	if job.Points <= 0 {
		return nil
	}
	customerID, err := uuid.Parse(job.CustomerID)
	if err != nil {
		return fmt.Errorf("invalid customer_id %q: %w", job.CustomerID, err)
	}

	if err := w.customers.AddPoints(ctx, customerID, job.Points); err != nil {
		return err
	}

	log.Info().
		Str("customer_id", job.CustomerID).
		Str("sale_id", job.SaleID).
		Int64("points", job.Points).
		Msg("loyalty points accrued")
	return nil
}
