package store

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adsigel/wknd-works/models"
)

// estimatedCostRatio is the fallback cost basis, as a share of retail, for
// records the sync collaborator delivered without a cost.
const estimatedCostRatio = 0.5

// InventoryStore reads the inventory snapshot. The table is written by the
// external sync collaborator; this service never mutates it.
type InventoryStore struct {
	db *pgxpool.Pool
}

// NewInventoryStore returns a store backed by the given pool.
func NewInventoryStore(db *pgxpool.Pool) *InventoryStore {
	return &InventoryStore{db: db}
}

// Snapshot returns every inventory record. Records without a usable cost are
// valued at estimatedCostRatio of retail and tagged as estimated so
// downstream consumers can tell real from assumed costs.
func (s *InventoryStore) Snapshot(ctx context.Context) ([]models.InventoryRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, sku, quantity, retail_price, cost_price, cost_source,
		        discount_factor, shrinkage_factor, last_received_at, created_at, updated_at
		 FROM inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("load inventory snapshot: %w", err)
	}
	defer rows.Close()

	var records []models.InventoryRecord
	estimated := 0
	for rows.Next() {
		var r models.InventoryRecord
		var cost *float64
		if err := rows.Scan(&r.ID, &r.Name, &r.SKU, &r.Quantity, &r.RetailPrice, &cost, &r.CostSource,
			&r.DiscountFactor, &r.ShrinkageFactor, &r.LastReceivedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w", err)
		}
		if cost == nil || *cost <= 0 {
			r.CostPrice = r.RetailPrice * estimatedCostRatio
			r.CostSource = models.CostSourceEstimated
			estimated++
		} else {
			r.CostPrice = *cost
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory snapshot: %w", err)
	}
	if estimated > 0 {
		log.Printf("⚠️ [INVENTORY] %d records have no cost, assuming %.0f%% of retail", estimated, estimatedCostRatio*100)
	}
	return records, nil
}
