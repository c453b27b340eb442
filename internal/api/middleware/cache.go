package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

// CacheLogger интерфейс для логирования промахов Redis
type CacheLogger interface {
	Warn(format string, v ...interface{})
}

// bodyRecorder буферизует тело ответа для записи в кэш
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (r *bodyRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Cache кэширует успешные GET ответы в Redis.
// Ключ строится из хэша метода и URL, чтобы не хранить сырые query-строки.
// Ошибки Redis не прерывают запрос: кэш деградирует до прямого прохода.
func Cache(client *redis.Client, prefix string, ttl time.Duration, log CacheLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(prefix, r)

			if cached, err := client.Get(r.Context(), key).Result(); err == nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(cached))
				return
			} else if err != redis.Nil {
				log.Warn("cache: redis get failed: key=%s: %v", key, err)
			}

			recorder := &bodyRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			if recorder.status == http.StatusOK && recorder.buf.Len() > 0 {
				if err := client.Set(r.Context(), key, recorder.buf.Bytes(), ttl).Err(); err != nil {
					log.Warn("cache: redis set failed: key=%s: %v", key, err)
				}
			}
		})
	}
}

func cacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.RequestURI()))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
