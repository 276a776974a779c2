package middlewares

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

const tooManyRequests = "Terlalu banyak permintaan. Coba lagi nanti"

// KEYS[1] bucket hash {tokens, ts}; ARGV[1] rate/s; ARGV[2] capacity.
// Returns {allowed 1|0, remaining tokens (floored), retry_after_ms}.
const tokenBucketLua = `
local key, rate, cap = KEYS[1], tonumber(ARGV[1]), tonumber(ARGV[2])
local t = redis.call('TIME')
local now = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens, ts = tonumber(state[1]), tonumber(state[2])
if tokens == nil then
  tokens, ts = cap, now
end
if now > ts then
  tokens = math.min(cap, tokens + (now - ts) / 1000.0 * rate)
end

local allowed, retry = 0, 0
if tokens >= 1.0 then
  tokens = tokens - 1.0
  allowed = 1
else
  retry = math.ceil((1.0 - tokens) * 1000.0 / rate)
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now)
redis.call('PEXPIRE', key, math.ceil(cap / rate * 1000.0))
return {allowed, math.floor(tokens), retry}
`

// RedisTokenBucket smooths request bursts per key. Redis errors fail open.
type RedisTokenBucket struct {
	rdb      *redis.Client
	keyFn    KeyFunc
	ratePerS float64
	burst    int
	script   *redis.Script
}

func NewRedisTokenBucket(rdb *redis.Client, ratePerSecond float64, burst int, keyFn KeyFunc) *RedisTokenBucket {
	return &RedisTokenBucket{
		rdb:      rdb,
		keyFn:    keyFn,
		ratePerS: ratePerSecond,
		burst:    burst,
		script:   redis.NewScript(tokenBucketLua),
	}
}

func (tb *RedisTokenBucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := tb.keyFn(r)

		res, err := tb.script.Run(ctx, tb.rdb, []string{key},
			strconv.FormatFloat(tb.ratePerS, 'f', -1, 64),
			strconv.Itoa(tb.burst),
		).Int64Slice()
		if err == nil && len(res) != 3 {
			err = redis.Nil
		}
		if err != nil {
			slog.WarnContext(ctx, "token bucket unavailable, allowing request", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Policy", "token-bucket")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(tb.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res[1], 10))

		if res[0] != 1 {
			retry := max(int64(1), (res[2]+999)/1000)
			w.Header().Set("Retry-After", strconv.FormatInt(retry, 10))
			slog.InfoContext(ctx, "rate limited", "policy", "token-bucket", "key", key, "retry_after_s", retry)
			httpx.Fail(w, http.StatusTooManyRequests, tooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedisSlidingWindow caps requests per key over a rolling window using a ZSET.
// Redis errors fail open.
type RedisSlidingWindow struct {
	rdb    *redis.Client
	keyFn  KeyFunc
	limit  int
	window time.Duration
}

func NewRedisSlidingWindow(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc) *RedisSlidingWindow {
	return &RedisSlidingWindow{rdb: rdb, keyFn: keyFn, limit: limit, window: window}
}

func (sw *RedisSlidingWindow) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := sw.keyFn(r)
		now := time.Now().UnixMilli()
		windowMs := sw.window.Milliseconds()

		pipe := sw.rdb.TxPipeline()
		pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: uuid.NewString()})
		pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now-windowMs, 10))
		countCmd := pipe.ZCard(ctx, key)
		pipe.PExpire(ctx, key, sw.window+time.Second)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.WarnContext(ctx, "sliding window unavailable, allowing request", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		count := int(countCmd.Val())

		w.Header().Set("X-RateLimit-Policy", "sliding-window")
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(sw.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, sw.limit-count)))

		if count > sw.limit {
			retry := int64(1)
			if oldest, err := sw.rdb.ZRangeWithScores(ctx, key, 0, 0).Result(); err == nil && len(oldest) == 1 {
				ms := max(int64(1000), int64(oldest[0].Score)+windowMs-now)
				retry = (ms + 999) / 1000
			}
			w.Header().Set("Retry-After", strconv.FormatInt(retry, 10))
			slog.InfoContext(ctx, "rate limited", "policy", "sliding-window", "key", key, "retry_after_s", retry)
			httpx.Fail(w, http.StatusTooManyRequests, tooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
