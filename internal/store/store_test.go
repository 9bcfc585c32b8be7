package store

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))

	raw, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("read modify write", func(t *testing.T) {
		s := New(NewMemoryBackend())
		require.NoError(t, s.Set(ctx, "counter", []byte("1")))

		err := s.Update(ctx, "counter", func(old []byte) ([]byte, error) {
			var n int
			require.NoError(t, json.Unmarshal(old, &n))
			return json.Marshal(n + 1)
		})
		require.NoError(t, err)

		raw, _, err := s.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "2", string(raw))
	})

	t.Run("nil result leaves key untouched", func(t *testing.T) {
		s := New(NewMemoryBackend())
		require.NoError(t, s.Set(ctx, "k", []byte("original")))

		notified := 0
		defer s.Subscribe("k", func(Event) { notified++ })()

		err := s.Update(ctx, "k", func(old []byte) ([]byte, error) {
			return nil, nil
		})
		require.NoError(t, err)

		raw, _, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "original", string(raw))
		assert.Zero(t, notified)
	})

	t.Run("concurrent updates on one key all apply", func(t *testing.T) {
		s := New(NewMemoryBackend())
		require.NoError(t, s.Set(ctx, "counter", []byte("0")))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Update(ctx, "counter", func(old []byte) ([]byte, error) {
					var n int
					if err := json.Unmarshal(old, &n); err != nil {
						return nil, err
					}
					return json.Marshal(n + 1)
				})
			}()
		}
		wg.Wait()

		raw, _, err := s.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "50", string(raw))
	})
}

func TestStoreSubscribe(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())

	t.Run("key match and wildcard", func(t *testing.T) {
		var keyed, all []Event
		unsubKeyed := s.Subscribe("a", func(ev Event) { keyed = append(keyed, ev) })
		unsubAll := s.Subscribe("", func(ev Event) { all = append(all, ev) })
		defer unsubKeyed()
		defer unsubAll()

		require.NoError(t, s.Set(ctx, "a", []byte("1")))
		require.NoError(t, s.Set(ctx, "b", []byte("2")))

		require.Len(t, keyed, 1)
		assert.Equal(t, "a", keyed[0].Key)
		assert.Equal(t, []byte("1"), keyed[0].Value)
		require.Len(t, all, 2)
	})

	t.Run("delete delivers nil value", func(t *testing.T) {
		var got []Event
		defer s.Subscribe("gone", func(ev Event) { got = append(got, ev) })()

		require.NoError(t, s.Set(ctx, "gone", []byte("x")))
		require.NoError(t, s.Delete(ctx, "gone"))

		require.Len(t, got, 2)
		assert.Nil(t, got[1].Value)
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		calls := 0
		unsub := s.Subscribe("u", func(Event) { calls++ })

		require.NoError(t, s.Set(ctx, "u", []byte("1")))
		unsub()
		require.NoError(t, s.Set(ctx, "u", []byte("2")))

		assert.Equal(t, 1, calls)
	})
}

func TestStoreRelay(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())

	var got []Event
	defer s.Subscribe("remote", func(ev Event) { got = append(got, ev) })()

	s.Relay(Event{Key: "remote", Value: []byte("peer")})

	// Observers fire without a corresponding local write
	require.Len(t, got, 1)
	assert.Equal(t, []byte("peer"), got[0].Value)
	_, ok, err := s.Get(ctx, "remote")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEventRemoteMarker(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend())

	var got []Event
	defer s.Subscribe("", func(ev Event) { got = append(got, ev) })()

	// Interleave a relayed event with local writes. Forwarding observers
	// rely on the marker to skip only the relayed one, so a local write
	// landing mid-relay must still read as local.
	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	s.Relay(Event{Key: "b", Value: []byte("peer")})
	require.NoError(t, s.Set(ctx, "c", []byte("2")))

	require.Len(t, got, 3)
	assert.False(t, got[0].Remote())
	assert.True(t, got[1].Remote())
	assert.False(t, got[2].Remote())
}

func TestMemoryBackendKeys(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	require.NoError(t, b.Save(ctx, "room:111111", []byte("a")))
	require.NoError(t, b.Save(ctx, "room:222222", []byte("b")))
	require.NoError(t, b.Save(ctx, "profile:x", []byte("c")))

	keys, err := b.Keys(ctx, "room:")
	require.NoError(t, err)
	assert.Equal(t, []string{"room:111111", "room:222222"}, keys)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	in := []byte("abc")
	require.NoError(t, b.Save(ctx, "k", in))
	in[0] = 'z'

	out, ok, err := b.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(out))

	out[0] = 'z'
	again, _, err := b.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
