package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const idempKey = "idemp:/leaves:emp1@company.com:abc"

func newIdempotentRouter(rdb *redis.Client, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/leaves", func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, "emp1@company.com")
		c.Next()
	}, middleware.Idempotency(rdb), func(c *gin.Context) {
		*calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/leaves", nil)
	if key != "" {
		req.Header.Set(middleware.HeaderIdempotencyKey, key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("first request runs and is stored", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempKey).RedisNil()
		mock.ExpectSetNX(idempKey+":lock", "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(idempKey, `{"status":201,"body":{"ok":true}}`, 24*time.Hour).SetVal("OK")
		mock.ExpectDel(idempKey + ":lock").SetVal(1)
		calls := 0

		w := postWithKey(newIdempotentRouter(rdb, &calls), "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completed request is replayed", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempKey).SetVal(`{"status":201,"body":{"ok":true}}`)
		calls := 0

		w := postWithKey(newIdempotentRouter(rdb, &calls), "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, calls)
	})

	t.Run("in flight request conflicts", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(idempKey).RedisNil()
		mock.ExpectSetNX(idempKey+":lock", "locked", 30*time.Second).SetVal(false)
		calls := 0

		w := postWithKey(newIdempotentRouter(rdb, &calls), "abc")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, calls)
	})

	t.Run("no key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0

		w := postWithKey(newIdempotentRouter(rdb, &calls), "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client passes through", func(t *testing.T) {
		calls := 0

		w := postWithKey(newIdempotentRouter(nil, &calls), "abc")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
	})
}
