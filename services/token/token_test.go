package token

import (
	"context"
	"testing"

	tokenRepo "digitalmindset/database/repository/token"
	"digitalmindset/database/store"
	"digitalmindset/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newService(t *testing.T, tokens ...string) (*DefaultTokenService, tokenRepo.TokenRepository) {
	t.Helper()
	repo := tokenRepo.NewTokenRepo(store.NewMemoryStore(), zap.NewNop())
	svc := NewTokenService(repo, zap.NewNop())
	for _, tok := range tokens {
		_, err := svc.Create(context.Background(), tok)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestVerifyBindsOnceAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t, "ABC")

	res, err := svc.Verify(ctx, "ABC", "dev-1")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.False(t, res.IsMaster)

	first := repo.List(ctx)[0]
	assert.Equal(t, "dev-1", first.UsedByDevice)
	assert.False(t, first.LastUsed.IsZero())

	for i := 0; i < 2; i++ {
		_, err = svc.Verify(ctx, "ABC", "dev-1")
		require.NoError(t, err)
		assert.Equal(t, "dev-1", repo.List(ctx)[0].UsedByDevice)
	}
}

func TestVerifySecondDeviceConflictsRegardlessOfActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "ABC")

	_, err := svc.Verify(ctx, "ABC", "dev-1")
	require.NoError(t, err)

	_, err = svc.Verify(ctx, "ABC", "dev-2")
	require.ErrorIs(t, err, utils.ErrDeviceConflict)

	_, err = svc.SetActive(ctx, "ABC", false)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "ABC", "dev-2")
	require.ErrorIs(t, err, utils.ErrDeviceConflict)
}

func TestDeactivationKeepsBinding(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t, "ABC")

	_, err := svc.Verify(ctx, "ABC", "dev-1")
	require.NoError(t, err)

	_, err = svc.SetActive(ctx, "ABC", false)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "ABC", "dev-1")
	require.ErrorIs(t, err, utils.ErrTokenInactive)
	assert.Equal(t, "dev-1", repo.List(ctx)[0].UsedByDevice)

	_, err = svc.SetActive(ctx, "ABC", true)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, "ABC", "dev-1")
	require.NoError(t, err)
}

func TestVerifyFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "ABC")

	_, err := svc.Verify(ctx, "", "dev")
	assert.ErrorIs(t, err, utils.ErrTokenRequired)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = svc.Verify(ctx, "NOPE", "dev")
	assert.ErrorIs(t, err, utils.ErrTokenNotFound)
	assert.Equal(t, 404, utils.StatusFor(err))

	_, err = svc.Verify(ctx, "ABC", "")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}

func TestIsMasterIsAPrefixCheck(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "MASTER-1", "master-2", "X-MASTER-3")

	cases := map[string]bool{"MASTER-1": true, "master-2": false, "X-MASTER-3": false}
	for tok, want := range cases {
		res, err := svc.Verify(ctx, tok, "dev")
		require.NoError(t, err, tok)
		assert.Equal(t, want, res.IsMaster, tok)
	}
}

func TestAdminOperations(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "ABC")

	_, err := svc.Create(ctx, "ABC")
	require.ErrorIs(t, err, utils.ErrTokenExists)
	assert.Equal(t, 400, utils.StatusFor(err))

	_, err = svc.SetActive(ctx, "NOPE", true)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	list, err := svc.Create(ctx, "DEF")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[1].Active)
	assert.Empty(t, list[1].UsedByDevice)

	list, err = svc.Remove(ctx, "ABC")
	require.NoError(t, err)
	require.Len(t, list, 1)
	list, err = svc.Remove(ctx, "ABC")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Len(t, svc.List(ctx), 1)
}

func TestAuthorizeDoesNotBind(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t, "ABC")

	require.NoError(t, svc.Authorize(ctx, "ABC", "dev-1"))
	assert.Empty(t, repo.List(ctx)[0].UsedByDevice)

	_, err := svc.Verify(ctx, "ABC", "dev-1")
	require.NoError(t, err)
	require.NoError(t, svc.Authorize(ctx, "ABC", ""))
	require.ErrorIs(t, svc.Authorize(ctx, "ABC", "dev-2"), utils.ErrDeviceConflict)
	require.ErrorIs(t, svc.Authorize(ctx, "NOPE", ""), utils.ErrTokenNotFound)
}
