package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.True(t, IsHash(hash))

	other, err := HashPassword("testpassword123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salt must differ")

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
		wantErr  bool
	}{
		{name: "Correct", password: "correct-horse", hash: hash, want: true},
		{name: "Wrong", password: "battery-staple", hash: hash},
		{name: "Empty", password: "", hash: hash},
		{name: "InvalidFormat", password: "x", hash: "invalid", wantErr: true},
		{name: "WrongAlgorithm", password: "x", hash: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA", wantErr: true},
		{name: "BadSalt", password: "x", hash: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	ok, err := CheckPassword("admin", "admin")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("Admin", "admin")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = CheckPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, hash)
	require.NoError(t, err)
	assert.False(t, ok, "the hash itself is not the password")
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, Session{ID: "a", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)

	missing, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, missing)

	now = now.Add(2 * time.Hour)
	expired, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, expired)
	assert.Equal(t, 0, store.Len())

	require.NoError(t, store.Save(ctx, Session{ID: "c", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, store.Delete(ctx, "c"))
	require.NoError(t, store.Delete(ctx, "c"))
	assert.Equal(t, 0, store.Len())
}

func newTestManager(now *time.Time) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	store.now = func() time.Time { return *now }

	m := NewManager("admin", "signing-key", 24*time.Hour, store)
	m.now = func() time.Time { return *now }

	return m, store
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("WrongPasswordOpensNoSession", func(t *testing.T) {
		now := time.Now()
		m, store := newTestManager(&now)

		token, err := m.Login(ctx, "wrong")
		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.Empty(t, token)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("LoginCheckLogout", func(t *testing.T) {
		now := time.Now()
		m, store := newTestManager(&now)

		token, err := m.Login(ctx, "admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, 1, store.Len())

		ok, err := m.Authenticated(ctx, token)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, m.Logout(ctx, token))
		ok, err = m.Authenticated(ctx, token)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IndependentSessions", func(t *testing.T) {
		now := time.Now()
		m, _ := newTestManager(&now)

		first, err := m.Login(ctx, "admin")
		require.NoError(t, err)
		second, err := m.Login(ctx, "admin")
		require.NoError(t, err)

		require.NoError(t, m.Logout(ctx, first))

		ok, err := m.Authenticated(ctx, second)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("ExpiredSession", func(t *testing.T) {
		now := time.Now()
		m, _ := newTestManager(&now)

		token, err := m.Login(ctx, "admin")
		require.NoError(t, err)

		now = now.Add(25 * time.Hour)
		ok, err := m.Authenticated(ctx, token)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ForeignOrBrokenTokens", func(t *testing.T) {
		now := time.Now()
		m, _ := newTestManager(&now)
		other := NewManager("admin", "another-key", time.Hour, NewMemoryStore())

		foreign, err := other.Login(ctx, "admin")
		require.NoError(t, err)

		for _, token := range []string{"", "garbage", foreign} {
			ok, err := m.Authenticated(ctx, token)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.NoError(t, m.Logout(ctx, token))
		}
	})

	t.Run("HashedPassword", func(t *testing.T) {
		hash, err := HashPassword("pa55")
		require.NoError(t, err)
		m := NewManager(hash, "key", time.Hour, NewMemoryStore())

		_, err = m.Login(ctx, "pa55")
		assert.NoError(t, err)
		_, err = m.Login(ctx, hash)
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}
