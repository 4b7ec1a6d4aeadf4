package bank

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MartPlace/MartPlace-Backend/api/models"
	"github.com/MartPlace/MartPlace-Backend/providers/fiat"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	redisservice "github.com/MartPlace/MartPlace-Backend/services/redis"
	"github.com/patrickmn/go-cache"
)

const (
	directoryCacheKey = "bank_directory"
	redisBankKey      = "banks"
	sessionTTL        = 30 * time.Minute
)

// BankSource provides the live bank list
type BankSource interface {
	GetBanks() (*fiat.BankCollection, error)
}

// Directory is the per-session bank code/name source used for Stage 2
// validation and display. The live list is fetched once per session and
// held in memory; a Redis copy is shared across instances; failure
// falls back to the last-known copy, then to the static list.
type Directory struct {
	source BankSource
	redis  *redisservice.RedisService
	cache  *cache.Cache
	logger *logging.Logger

	mu     sync.RWMutex
	byCode map[string]string
}

func NewDirectory(source BankSource, redis *redisservice.RedisService, logger *logging.Logger) *Directory {
	return &Directory{
		source: source,
		redis:  redis,
		cache:  cache.New(sessionTTL, 2*sessionTTL),
		logger: logger,
		byCode: make(map[string]string),
	}
}

// Load returns the current bank list. It never fails: a dead provider
// degrades to the shared cache, then to the static fallback list.
func (d *Directory) Load(ctx context.Context) models.BankResponseCollection {
	if cached, found := d.cache.Get(directoryCacheKey); found {
		if collection, ok := cached.(models.BankResponseCollection); ok {
			return collection
		}
	}

	banks, err := d.source.GetBanks()
	if err == nil && banks != nil && len(*banks) > 0 {
		collection := models.ToBankResponseCollection(*banks)
		d.cache.Set(directoryCacheKey, collection, cache.DefaultExpiration)
		d.index(collection)

		if d.redis != nil {
			if storeErr := d.redis.StoreBankResponseCollection(ctx, redisBankKey, collection); storeErr != nil {
				d.logger.Error(fmt.Sprintf("could not share bank list: %v", storeErr))
			}
		}
		return collection
	}

	if err != nil {
		d.logger.Error(fmt.Sprintf("could not fetch bank list: %v", err))
	}

	// Last-known shared copy
	if d.redis != nil {
		if collection, redisErr := d.redis.GetBankResponseCollection(ctx, redisBankKey); redisErr == nil && len(collection) > 0 {
			d.cache.Set(directoryCacheKey, collection, cache.DefaultExpiration)
			d.index(collection)
			return collection
		}
	}

	// Static fallback
	collection := models.ToBankResponseCollection(fiat.FallbackBanks)
	d.index(collection)
	return collection
}

// Lookup maps a bank code to its display name against the current
// snapshot, loading the directory on first use.
func (d *Directory) Lookup(code string) (string, bool) {
	d.mu.RLock()
	name, ok := d.byCode[code]
	d.mu.RUnlock()
	if ok {
		return name, true
	}

	d.Load(context.Background())

	d.mu.RLock()
	defer d.mu.RUnlock()
	name, ok = d.byCode[code]
	return name, ok
}

func (d *Directory) index(collection models.BankResponseCollection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, bank := range collection {
		d.byCode[bank.Code] = bank.Name
	}
}
