package displayname

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis in-memory двойник используемого подмножества go-redis
type fakeRedis struct {
	data    map[string]string
	getErr  error
	setErr  error
	deleted [][]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys)
	for _, key := range keys {
		delete(f.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.t
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestCache(client RedisClient, now time.Time) *Cache {
	c := NewCache(client, nopLogger{})
	c.timeProvider = &fixedTime{t: now}
	return c
}

func TestGet_EmptyCache(t *testing.T) {
	cache := newTestCache(newFakeRedis(), testNow)

	names, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, names)
}

func TestSetAndGet(t *testing.T) {
	client := newFakeRedis()
	cache := newTestCache(client, testNow)

	payload := map[string]string{"user-1": "Ivan Petrov", "user-2": "Anna K"}
	require.NoError(t, cache.Set(context.Background(), payload))

	// Оба ключа записаны: данные и абсолютный expiry в миллисекундах
	assert.Contains(t, client.data, "desk_booking:display_names")
	expiryRaw := client.data["desk_booking:display_names_expiry"]
	expiryMillis, err := strconv.ParseInt(expiryRaw, 10, 64)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(time.Hour).UnixMilli(), expiryMillis)

	names, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, names)
}

func TestGet_ExpiredEntryIsCleared(t *testing.T) {
	client := newFakeRedis()
	writer := newTestCache(client, testNow)
	require.NoError(t, writer.Set(context.Background(), map[string]string{"user-1": "Ivan"}))

	// Читаем спустя логический TTL
	reader := newTestCache(client, testNow.Add(time.Hour+time.Second))

	names, ok, err := reader.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, names)

	// Истекшие ключи удалены
	assert.Empty(t, client.data)
	require.Len(t, client.deleted, 1)
	assert.ElementsMatch(t, []string{"desk_booking:display_names", "desk_booking:display_names_expiry"}, client.deleted[0])
}

func TestGet_UnparseableExpiryIsCleared(t *testing.T) {
	client := newFakeRedis()
	client.data["desk_booking:display_names_expiry"] = "not a number"
	client.data["desk_booking:display_names"] = `{"user-1":"Ivan"}`

	cache := newTestCache(client, testNow)

	_, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, client.data)
}

func TestGet_UndecodablePayloadIsCleared(t *testing.T) {
	client := newFakeRedis()
	client.data["desk_booking:display_names_expiry"] = strconv.FormatInt(testNow.Add(time.Hour).UnixMilli(), 10)
	client.data["desk_booking:display_names"] = `{broken`

	cache := newTestCache(client, testNow)

	_, ok, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGet_RedisError(t *testing.T) {
	client := newFakeRedis()
	client.getErr = assert.AnError

	cache := newTestCache(client, testNow)

	_, _, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestSet_RedisError(t *testing.T) {
	client := newFakeRedis()
	client.setErr = assert.AnError

	cache := newTestCache(client, testNow)

	err := cache.Set(context.Background(), map[string]string{"user-1": "Ivan"})
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}
