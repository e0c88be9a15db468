package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adsigel/wknd-works/models"
)

const (
	forecastDocID   = 1
	maxSaveAttempts = 3

	// Uniform jitter bounds between save attempts. Deliberately not
	// exponential: write volume on the singleton is low.
	jitterFloor = 50 * time.Millisecond
	jitterSpan  = 200 * time.Millisecond
)

// ForecastStore persists the singleton forecast document. Writes are
// serialized through a version column: an update only lands if the version
// it read is still current.
type ForecastStore struct {
	db *pgxpool.Pool
}

// NewForecastStore returns a store backed by the given pool.
func NewForecastStore(db *pgxpool.Pool) *ForecastStore {
	return &ForecastStore{db: db}
}

// Get returns the most recently committed document, or ErrNotFound when no
// forecast has ever been computed.
func (s *ForecastStore) Get(ctx context.Context) (*models.ForecastDocument, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT document FROM forecast_documents WHERE id = $1`, forecastDocID,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load forecast document: %w", err)
	}

	var doc models.ForecastDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode forecast document: %w", err)
	}
	return &doc, nil
}

// Save replaces the singleton document atomically. On a version conflict it
// retries up to maxSaveAttempts times with uniform jitter, then surfaces a
// ConflictError. The document is never written field-by-field, so readers
// cannot observe a torn update.
func (s *ForecastStore) Save(ctx context.Context, doc *models.ForecastDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode forecast document: %w", err)
	}

	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		ok, err := s.trySave(ctx, payload)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		log.Printf("⚠️ [FORECAST STORE] version conflict on save (attempt %d/%d)", attempt, maxSaveAttempts)
		if attempt < maxSaveAttempts {
			time.Sleep(jitterFloor + time.Duration(rand.Int63n(int64(jitterSpan))))
		}
	}
	return &ConflictError{Attempts: maxSaveAttempts}
}

// trySave performs one compare-and-swap round. It returns false without an
// error when another writer won the race.
func (s *ForecastStore) trySave(ctx context.Context, payload []byte) (bool, error) {
	var version int64
	err := s.db.QueryRow(ctx,
		`SELECT version FROM forecast_documents WHERE id = $1`, forecastDocID,
	).Scan(&version)

	if errors.Is(err, pgx.ErrNoRows) {
		tag, err := s.db.Exec(ctx,
			`INSERT INTO forecast_documents (id, version, document, updated_at)
			 VALUES ($1, 1, $2, now())
			 ON CONFLICT (id) DO NOTHING`,
			forecastDocID, payload)
		if err != nil {
			return false, fmt.Errorf("insert forecast document: %w", err)
		}
		return tag.RowsAffected() == 1, nil
	}
	if err != nil {
		return false, fmt.Errorf("read forecast version: %w", err)
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE forecast_documents
		 SET document = $1, version = version + 1, updated_at = now()
		 WHERE id = $2 AND version = $3`,
		payload, forecastDocID, version)
	if err != nil {
		return false, fmt.Errorf("update forecast document: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
