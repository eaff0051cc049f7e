// Package accounts persists the rental catalog: the accounts.json array.
// Account names are not unique keys; updates mutate the first name match in
// storage order, as the original client does.
package accounts

import (
	"context"
	"fmt"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/store"
)

// demoAccounts is the catalog seeded on first run, mirroring the original
// client's demo data.
func demoAccounts() []models.Account {
	return []models.Account{
		{Name: "GenshinPro", Status: models.StatusGold, Avatar: "⚡", Points: 500},
		{Name: "ValorantMaster", Status: models.StatusUltimate, Avatar: "🎯", Points: 1000},
		{Name: "MinecraftVIP", Status: models.StatusSilver, Avatar: "⛏️", Points: 250},
		{Name: "FortniteLegend", Status: models.StatusGold, Avatar: "🏆", Points: 750},
		{Name: "ApexPredator", Status: models.StatusBronze, Avatar: "🦅", Points: 100},
	}
}

type JSONRepository struct {
	store *store.Store
}

// NewJSONRepository opens the catalog. If accounts.json is absent or holds
// an empty array, the demo catalog is seeded and persisted immediately.
func NewJSONRepository(st *store.Store) (*JSONRepository, error) {
	r := &JSONRepository{store: st}

	var coll []models.Account
	if _, err := st.Load(common.AccountsFile, &coll); err != nil {
		return nil, err
	}
	if len(coll) == 0 {
		if err := st.Save(common.AccountsFile, demoAccounts()); err != nil {
			return nil, fmt.Errorf("seed accounts: %w", err)
		}
	}

	return r, nil
}

func (r *JSONRepository) load() ([]models.Account, error) {
	var coll []models.Account
	if _, err := r.store.Load(common.AccountsFile, &coll); err != nil {
		return nil, err
	}
	return coll, nil
}

func (r *JSONRepository) All(ctx context.Context) ([]models.Account, error) {
	return r.load()
}

func (r *JSONRepository) Append(ctx context.Context, acc models.Account) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	coll = append(coll, acc)
	return r.store.Save(common.AccountsFile, coll)
}

// updateFirst mutates the first account whose name matches and rewrites the
// document. common.ErrNotFound when nothing matches.
func (r *JSONRepository) updateFirst(name string, mutate func(*models.Account)) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	for i := range coll {
		if coll[i].Name == name {
			mutate(&coll[i])
			return r.store.Save(common.AccountsFile, coll)
		}
	}

	return common.ErrNotFound
}

func (r *JSONRepository) UpdateStatus(ctx context.Context, name string, status models.Status) error {
	return r.updateFirst(name, func(acc *models.Account) {
		acc.Status = status
	})
}

func (r *JSONRepository) UpdateAvatar(ctx context.Context, name string, avatar string) error {
	return r.updateFirst(name, func(acc *models.Account) {
		acc.Avatar = avatar
	})
}
