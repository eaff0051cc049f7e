// Package users persists the credential collection: the users.json object
// keyed by username. The whole document is read and rewritten on every
// mutation, matching the original client.
package users

import (
	"context"
	"fmt"

	"github.com/azim218/RentMyWaifu/internal/common"
	"github.com/azim218/RentMyWaifu/internal/models"
	"github.com/azim218/RentMyWaifu/internal/store"
)

// seedAdminDigest is the legacy digest of the well-known default admin
// password. Kept in the MD5 format so a fresh users.json is byte-compatible
// with one created by the original client.
const seedAdminDigest = "a635e4c8cdd614ba9ef365544a009187"

type JSONRepository struct {
	store *store.Store
}

// NewJSONRepository opens the users collection. If users.json does not
// exist, it is seeded with the bootstrap administrator record and persisted
// immediately.
func NewJSONRepository(st *store.Store) (*JSONRepository, error) {
	r := &JSONRepository{store: st}

	coll := map[string]models.UserCredential{}
	found, err := st.Load(common.UsersFile, &coll)
	if err != nil {
		return nil, err
	}
	if !found {
		coll[common.AdminUsername] = models.UserCredential{
			Password: seedAdminDigest,
			IsAdmin:  true,
			Points:   9999,
			Status:   models.StatusUltimate,
		}
		if err := st.Save(common.UsersFile, coll); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
	}

	return r, nil
}

func (r *JSONRepository) load() (map[string]models.UserCredential, error) {
	coll := map[string]models.UserCredential{}
	if _, err := r.store.Load(common.UsersFile, &coll); err != nil {
		return nil, err
	}
	return coll, nil
}

func (r *JSONRepository) Create(ctx context.Context, username string, cred *models.UserCredential) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := coll[username]; ok {
		return common.ErrDuplicateUsername
	}

	coll[username] = *cred
	return r.store.Save(common.UsersFile, coll)
}

func (r *JSONRepository) GetByUsername(ctx context.Context, username string) (*models.UserCredential, error) {
	coll, err := r.load()
	if err != nil {
		return nil, err
	}

	cred, ok := coll[username]
	if !ok {
		return nil, common.ErrUserNotFound
	}
	return &cred, nil
}

func (r *JSONRepository) UpdateDigest(ctx context.Context, username string, digest string) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	cred, ok := coll[username]
	if !ok {
		return common.ErrNotFound
	}

	cred.Password = digest
	coll[username] = cred
	return r.store.Save(common.UsersFile, coll)
}

func (r *JSONRepository) UpdatePointsStatus(ctx context.Context, username string, points int, status models.Status) error {
	coll, err := r.load()
	if err != nil {
		return err
	}

	cred, ok := coll[username]
	if !ok {
		return common.ErrNotFound
	}

	cred.Points = points
	cred.Status = status
	coll[username] = cred
	return r.store.Save(common.UsersFile, coll)
}

func (r *JSONRepository) All(ctx context.Context) (map[string]models.UserCredential, error) {
	return r.load()
}
