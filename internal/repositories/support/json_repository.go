// Package support persists the append-only support_requests.json array.
// Unlike the other collections nothing is seeded: the file first appears on
// the first submission.
package support

import (
	"context"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/store"
)

type JSONRepository struct {
	store *store.Store
}

func NewJSONRepository(st *store.Store) *JSONRepository {
	return &JSONRepository{store: st}
}

func (r *JSONRepository) load() ([]models.SupportRequest, error) {
	var coll []models.SupportRequest
	if _, err := r.store.Load(common.SupportFile, &coll); err != nil {
		return nil, err
	}
	return coll, nil
}

func (r *JSONRepository) Append(ctx context.Context, req models.SupportRequest) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	coll = append(coll, req)
	return r.store.Save(common.SupportFile, coll)
}

// Last returns the most recent n requests in insertion order.
func (r *JSONRepository) Last(ctx context.Context, n int) ([]models.SupportRequest, error) {
	if n <= 0 {
		return nil, nil
	}

	coll, err := r.load()
	if err != nil {
		return nil, err
	}

	if n < len(coll) {
		coll = coll[len(coll)-n:]
	}
	return coll, nil
}

func (r *JSONRepository) Count(ctx context.Context) (int, error) {
	coll, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(coll), nil
}
