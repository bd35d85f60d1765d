package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogmosaic/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	entry := NewEntry(&model.UserRecord{ID: "u-1", Email: "a@b.c"}, "remote-tok")
	store.Save(entry)

	got, found := store.Get(entry.ID)
	require.True(t, found)
	assert.Equal(t, "u-1", got.Session.User.ID)
	assert.Equal(t, "remote-tok", got.RemoteToken)
	assert.True(t, got.Session.Authenticated())

	store.Delete(entry.ID)
	_, found = store.Get(entry.ID)
	assert.False(t, found)
}

func TestMemoryStoreGetReturnsIsolatedCopy(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	entry := NewEntry(&model.UserRecord{ID: "u-1", Email: "a@b.c"}, "remote-tok")
	store.Save(entry)

	got, found := store.Get(entry.ID)
	require.True(t, found)
	got.Session = model.NewUnauthenticatedSession()

	// Mutating the returned entry must not touch the stored one.
	again, found := store.Get(entry.ID)
	require.True(t, found)
	assert.True(t, again.Session.Authenticated())
}

func TestMemoryStoreConcurrentRefreshAndRead(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	entry := NewEntry(&model.UserRecord{ID: "u-1", Email: "a@b.c"}, "remote-tok")
	store.Save(entry)

	// One request refreshing its session, another reading its own snapshot,
	// both behind the same cookie. Run with the race detector on.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			got, ok := store.Get(entry.ID)
			if !ok {
				return
			}
			got.Session = model.NewAuthenticatedSession(&model.UserRecord{ID: "u-1", Email: "a@b.c"})
			store.Save(got)
		}
	}()

	for i := 0; i < 200; i++ {
		got, ok := store.Get(entry.ID)
		require.True(t, ok)
		assert.True(t, got.Session.Authenticated())
	}
	<-done
}

func TestMemoryStoreMissingID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, found := store.Get(uuid.New())
	assert.False(t, found)
}

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)
	id := uuid.New()

	tok, err := codec.Issue(id)
	require.NoError(t, err)

	parsed, err := codec.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestTokenCodecRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	_, err := codec.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecRejectsWrongSecret(t *testing.T) {
	tok, err := NewTokenCodec("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenCodec("secret-b", time.Hour).Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodecRejectsExpired(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute)
	tok, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	_, err = codec.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
