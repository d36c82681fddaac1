// internal/cache/profile_cache.go
// Cache hasil perbandingan profil di Redis (memoization fungsi murni)

package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"mcp-skin/internal/services"
)

const keyPrefix = "skinprofile:v1:"

// ProfileCache menyimpan ProfileComparison per (params, skin).
// Nil-safe: method pada *ProfileCache nil selalu miss dan tidak menyimpan.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

// NewFromAddr membuat client Redis dan memastikan server bisa di-ping.
func NewFromAddr(ctx context.Context, addr, password string, db int, ttl time.Duration) (*ProfileCache, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return New(rdb, ttl), nil
}

// Key is deterministic for identical inputs; float bits are hashed exactly,
// except -0 which hashes as +0 (the model gives identical curves for both).
func Key(p services.ReservoirParameters, skin services.SkinFactor) string {
	h := sha256.New()
	for _, v := range []float64{
		p.AreaAcres, p.WellboreRadiusFt, p.BoundaryPressurePsi, p.OilFVF,
		p.FlowRateSTBD, p.PermeabilityMD, p.ThicknessFt, p.ViscosityCP, float64(skin),
	} {
		if v == 0 {
			v = 0
		}
		fmt.Fprintf(h, "%016x;", math.Float64bits(v))
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *ProfileCache) Get(ctx context.Context, p services.ReservoirParameters, skin services.SkinFactor) (*services.ProfileComparison, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, Key(p, skin)).Bytes()
	if err != nil {
		return nil, false
	}
	var out services.ProfileComparison
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *ProfileCache) Set(ctx context.Context, p services.ReservoirParameters, skin services.SkinFactor, v *services.ProfileComparison) error {
	if c == nil || c.rdb == nil || v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, Key(p, skin), b, c.ttl).Err()
}

// GetOrCompute membaca cache, kalau miss hitung lalu simpan (error simpan diabaikan).
func (c *ProfileCache) GetOrCompute(ctx context.Context, p services.ReservoirParameters, skin services.SkinFactor) (*services.ProfileComparison, bool, error) {
	if v, ok := c.Get(ctx, p, skin); ok {
		return v, true, nil
	}
	v, err := services.CompareProfiles(p, skin)
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, p, skin, v)
	return v, false, nil
}

func (c *ProfileCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	err := c.rdb.Close()
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}
	return err
}
