package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"clinic-voice-tools/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisDoctorKeyPrefix prefixes cached fragment lookups.
	RedisDoctorKeyPrefix = "directory:doctor:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second

	defaultDoctorCacheTTL = 10 * time.Minute
)

// CachedDoctorDirectory is a read-through Redis cache in front of a
// DoctorDirectory. Only hits are cached. Redis failures are logged and the
// lookup falls through to the wrapped directory.
type CachedDoctorDirectory struct {
	next        DoctorDirectory
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCachedDoctorDirectory(next DoctorDirectory, redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CachedDoctorDirectory {
	if ttl <= 0 {
		ttl = defaultDoctorCacheTTL
	}
	return &CachedDoctorDirectory{
		next:        next,
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Initialize initializes the wrapped directory, then drops cached lookups.
func (c *CachedDoctorDirectory) Initialize(ctx context.Context) error {
	if err := c.next.Initialize(ctx); err != nil {
		return err
	}
	c.purge(ctx)
	return nil
}

func (c *CachedDoctorDirectory) FindByNameFragment(ctx context.Context, fragment string) (*entity.Doctor, error) {
	key := doctorCacheKey(fragment)

	if doctor, ok := c.get(ctx, key); ok {
		c.log.Debugf("Directory cache hit for %q", fragment)
		return doctor, nil
	}

	doctor, err := c.next.FindByNameFragment(ctx, fragment)
	if err != nil || doctor == nil {
		return doctor, err
	}

	c.set(ctx, key, doctor)
	return doctor, nil
}

func (c *CachedDoctorDirectory) get(ctx context.Context, key string) (*entity.Doctor, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read directory cache key %s: %+v", key, err)
		}
		return nil, false
	}

	var doctor entity.Doctor
	if err := json.Unmarshal(raw, &doctor); err != nil {
		c.log.Warnf("Discarding corrupt directory cache key %s: %+v", key, err)
		return nil, false
	}
	return &doctor, true
}

func (c *CachedDoctorDirectory) set(ctx context.Context, key string, doctor *entity.Doctor) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(doctor)
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write directory cache key %s: %+v", key, err)
	}
}

func (c *CachedDoctorDirectory) purge(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	var cleaned int
	iter := c.redisClient.Scan(ctx, 0, RedisDoctorKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warnf("Failed to delete directory cache key %s: %+v", iter.Val(), err)
			continue
		}
		cleaned++
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("Failed to scan directory cache: %+v", err)
		return
	}
	if cleaned > 0 {
		c.log.Debugf("Purged %d directory cache keys", cleaned)
	}
}

func doctorCacheKey(fragment string) string {
	return RedisDoctorKeyPrefix + strings.ToLower(fragment)
}
