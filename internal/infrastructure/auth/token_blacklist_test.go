package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTokenBlacklist_Keys(t *testing.T) {
	b := NewRedisTokenBlacklist(nil)
	assert.Equal(t, "aqario:token:blacklist:jti:3f2a", b.jtiKey("3f2a"))
	assert.Equal(t, "aqario:token:blacklist:user:42", b.userKey("42"))
}

// Refresh rotation revokes the presented refresh token for the rest of its
// lifetime while the newly issued pair stays usable.
func TestInMemoryTokenBlacklist_RefreshRotation(t *testing.T) {
	svc := newTestJWTService()
	blacklist := NewInMemoryTokenBlacklist()
	ctx := context.Background()
	sub := newTestSubject()

	first, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)
	old, err := svc.ValidateRefreshToken(first.RefreshToken)
	require.NoError(t, err)
	assert.InDelta(t, svc.GetRefreshTokenExpiration().Seconds(), old.GetRemainingTTL().Seconds(), 5)

	require.NoError(t, blacklist.AddToBlacklist(ctx, old.ID, old.GetRemainingTTL()))

	second, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)
	rotated, err := svc.ValidateRefreshToken(second.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, old.ID, rotated.ID)

	revoked, err := blacklist.IsBlacklisted(ctx, old.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsBlacklisted(ctx, rotated.ID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

// Logout blacklists the access JTI only until the access token would have
// expired anyway.
func TestInMemoryTokenBlacklist_EntryLapsesWithToken(t *testing.T) {
	blacklist := NewInMemoryTokenBlacklist()
	ctx := context.Background()
	clock := time.Now()
	blacklist.now = func() time.Time { return clock }

	require.NoError(t, blacklist.AddToBlacklist(ctx, "access-jti", 15*time.Minute))
	require.NoError(t, blacklist.AddToBlacklist(ctx, "expired-jti", 0))

	revoked, err := blacklist.IsBlacklisted(ctx, "access-jti")
	require.NoError(t, err)
	assert.True(t, revoked)
	revoked, err = blacklist.IsBlacklisted(ctx, "expired-jti")
	require.NoError(t, err)
	assert.False(t, revoked)

	clock = clock.Add(16 * time.Minute)
	revoked, err = blacklist.IsBlacklisted(ctx, "access-jti")
	require.NoError(t, err)
	assert.False(t, revoked)

	blacklist.mu.Lock()
	assert.Empty(t, blacklist.revoked)
	blacklist.mu.Unlock()
}

func TestInMemoryTokenBlacklist_UserCutoffLapses(t *testing.T) {
	blacklist := NewInMemoryTokenBlacklist()
	ctx := context.Background()
	clock := time.Now()
	blacklist.now = func() time.Time { return clock }
	issued := clock.Add(-time.Hour)

	require.NoError(t, blacklist.AddUserTokensToBlacklist(ctx, "user-1", 7*24*time.Hour))
	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, "user-1", issued)
	require.NoError(t, err)
	assert.True(t, invalidated)

	// every token issued before the cutoff has expired by now
	clock = clock.Add(8 * 24 * time.Hour)
	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, "user-1", issued)
	require.NoError(t, err)
	assert.False(t, invalidated)
}

// Deactivating a user rejects every token issued up to that moment and
// leaves tokens issued afterwards, and other users, untouched.
func TestInMemoryTokenBlacklist_UserDeactivation(t *testing.T) {
	svc := newTestJWTService()
	blacklist := NewInMemoryTokenBlacklist()
	ctx := context.Background()
	sub := newTestSubject()
	other := newTestSubject()

	svc.now = func() time.Time { return time.Now().Add(-time.Minute) }
	before, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(before.AccessToken)
	require.NoError(t, err)

	invalidated, err := blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	require.NoError(t, err)
	assert.False(t, invalidated)

	require.NoError(t, blacklist.AddUserTokensToBlacklist(ctx, sub.UserID.String(), svc.GetRefreshTokenExpiration()))

	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	require.NoError(t, err)
	assert.True(t, invalidated)

	svc.now = func() time.Time { return time.Now().Add(time.Minute) }
	after, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)
	fresh, err := svc.ValidateRefreshToken(after.RefreshToken)
	require.NoError(t, err)
	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, fresh.UserID, fresh.GetIssuedAtTime())
	require.NoError(t, err)
	assert.False(t, invalidated)

	invalidated, err = blacklist.IsUserTokenInvalidated(ctx, other.UserID.String(), claims.GetIssuedAtTime())
	require.NoError(t, err)
	assert.False(t, invalidated)
}
