package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-biz-reviews/internal/logger"
	"github.com/MKhiriev/go-biz-reviews/internal/store"
	"github.com/MKhiriev/go-biz-reviews/internal/utils"
	"github.com/MKhiriev/go-biz-reviews/models"
)

// recordingUserRepo captures every user passed to CreateUser so tests can
// inspect what the loader would persist.
type recordingUserRepo struct {
	created []models.User
}

func (r *recordingUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	r.created = append(r.created, user)
	user.UserID = int64(len(r.created))
	return user, nil
}

func (r *recordingUserRepo) FindUserByEmail(_ context.Context, _ string) (models.User, error) {
	return models.User{}, store.ErrNoUserWasFound
}

func (r *recordingUserRepo) FindUserByID(_ context.Context, _ int64) (models.User, error) {
	return models.User{}, store.ErrNoUserWasFound
}

type recordingBusinessRepo struct {
	store.BusinessRepository

	created []models.Business
}

func (r *recordingBusinessRepo) CreateBusiness(_ context.Context, business models.Business) (models.Business, error) {
	r.created = append(r.created, business)
	business.BusinessID = int64(len(r.created))
	return business, nil
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestRun_HashesPlainPasswordsKeepsBcrypt(t *testing.T) {
	dir := t.TempDir()
	prehashed, err := utils.HashPassword("already-hashed")
	require.NoError(t, err)

	writeFixture(t, dir, usersFile, `[
		{"name": "Ada", "email": "ada@example.com", "password": "plain-secret"},
		{"name": "Linus", "email": "linus@example.com", "password": "`+prehashed+`"}
	]`)

	users := &recordingUserRepo{}
	loader := NewLoader(&store.Repositories{UserRepository: users}, dir, logger.Nop())

	require.NoError(t, loader.Run(context.Background()))
	require.Len(t, users.created, 2)

	assert.True(t, utils.LooksLikeBcryptHash(users.created[0].Password))
	assert.NotEqual(t, "plain-secret", users.created[0].Password)
	assert.NoError(t, utils.CheckPassword(users.created[0].Password, "plain-secret"))

	assert.Equal(t, prehashed, users.created[1].Password,
		"pre-hashed password must be stored verbatim")
}

func TestRun_SeededUsersAreNeverAdmins(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, usersFile, `[
		{"name": "Mallory", "email": "mallory@example.com", "password": "pw", "admin": true}
	]`)

	users := &recordingUserRepo{}
	loader := NewLoader(&store.Repositories{UserRepository: users}, dir, logger.Nop())

	require.NoError(t, loader.Run(context.Background()))
	require.Len(t, users.created, 1)
	assert.False(t, users.created[0].Admin, "admin flag in a fixture must not reach the store")
}

func TestRun_MissingFixtureFilesAreSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, businessesFile, `[
		{"ownerId": 1, "name": "Block 15", "city": "Corvallis"}
	]`)

	businesses := &recordingBusinessRepo{}
	loader := NewLoader(&store.Repositories{
		UserRepository:     &recordingUserRepo{},
		BusinessRepository: businesses,
	}, dir, logger.Nop())

	require.NoError(t, loader.Run(context.Background()))
	require.Len(t, businesses.created, 1)
	assert.Equal(t, "Block 15", businesses.created[0].Name)
}

func TestRun_MalformedFixtureFails(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, usersFile, `{"not": "an array"}`)

	loader := NewLoader(&store.Repositories{UserRepository: &recordingUserRepo{}}, dir, logger.Nop())

	err := loader.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), usersFile)
}
