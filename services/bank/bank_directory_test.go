package bank

import (
	"context"
	"errors"
	"testing"

	"github.com/MartPlace/MartPlace-Backend/providers/fiat"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	redisservice "github.com/MartPlace/MartPlace-Backend/services/redis"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logging.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &logging.Logger{Logger: log}
}

type stubSource struct {
	banks *fiat.BankCollection
	err   error
	calls int
}

func (s *stubSource) GetBanks() (*fiat.BankCollection, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.banks, nil
}

func liveBanks() *fiat.BankCollection {
	return &fiat.BankCollection{
		{Name: "Access Bank", Slug: "access-bank", Code: "044"},
		{Name: "Guaranty Trust Bank", Slug: "guaranty-trust-bank", Code: "058"},
	}
}

func newTestRedis(t *testing.T) *redisservice.RedisService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redisservice.NewRedisServiceWithClient(client)
}

func TestDirectory_LoadFromSourceOnce(t *testing.T) {
	source := &stubSource{banks: liveBanks()}
	directory := NewDirectory(source, nil, newTestLogger())

	collection := directory.Load(context.Background())
	require.Len(t, collection, 2)

	// second load is served from the session cache
	directory.Load(context.Background())
	require.Equal(t, 1, source.calls)

	name, ok := directory.Lookup("058")
	require.True(t, ok)
	require.Equal(t, "Guaranty Trust Bank", name)
}

func TestDirectory_SharesToRedis(t *testing.T) {
	redis := newTestRedis(t)
	source := &stubSource{banks: liveBanks()}
	directory := NewDirectory(source, redis, newTestLogger())

	directory.Load(context.Background())

	shared, err := redis.GetBankResponseCollection(context.Background(), "banks")
	require.NoError(t, err)
	require.Len(t, shared, 2)
}

func TestDirectory_FallsBackToRedisCopy(t *testing.T) {
	redis := newTestRedis(t)

	// another instance already shared the list
	seeder := NewDirectory(&stubSource{banks: liveBanks()}, redis, newTestLogger())
	seeder.Load(context.Background())

	source := &stubSource{err: errors.New("provider down")}
	directory := NewDirectory(source, redis, newTestLogger())

	collection := directory.Load(context.Background())
	require.Len(t, collection, 2)

	name, ok := directory.Lookup("044")
	require.True(t, ok)
	require.Equal(t, "Access Bank", name)
}

func TestDirectory_StaticFallback(t *testing.T) {
	source := &stubSource{err: errors.New("provider down")}
	directory := NewDirectory(source, nil, newTestLogger())

	collection := directory.Load(context.Background())
	require.Equal(t, len(fiat.FallbackBanks), len(collection))

	name, ok := directory.Lookup("058")
	require.True(t, ok)
	require.Equal(t, "Guaranty Trust Bank", name)
}

func TestDirectory_LookupUnknownCode(t *testing.T) {
	directory := NewDirectory(&stubSource{banks: liveBanks()}, nil, newTestLogger())

	_, ok := directory.Lookup("999")
	require.False(t, ok)
}
