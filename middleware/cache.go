package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// 缓存条目
type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// ResponseCache 内存响应缓存
type ResponseCache struct {
	sync.RWMutex
	items map[string]cacheEntry
}

// NewResponseCache 创建响应缓存
func NewResponseCache() *ResponseCache {
	return &ResponseCache{items: make(map[string]cacheEntry)}
}

func (rc *ResponseCache) get(key string, now time.Time) ([]byte, bool) {
	rc.RLock()
	defer rc.RUnlock()
	entry, ok := rc.items[key]
	if !ok || !entry.Expiration.After(now) {
		return nil, false
	}
	return entry.Content, true
}

func (rc *ResponseCache) set(key string, content []byte, expiration time.Duration) {
	rc.Lock()
	defer rc.Unlock()

	now := time.Now()
	for k, e := range rc.items {
		if e.Expiration.Before(now) {
			delete(rc.items, k)
		}
	}
	rc.items[key] = cacheEntry{Content: content, Expiration: now.Add(expiration)}
}

// Purge 清除所有缓存
func (rc *ResponseCache) Purge() {
	rc.Lock()
	rc.items = make(map[string]cacheEntry)
	rc.Unlock()
}

// Len 缓存条目数
func (rc *ResponseCache) Len() int {
	rc.RLock()
	defer rc.RUnlock()
	return len(rc.items)
}

// cacheKey 由路径和排序后的查询参数生成
func cacheKey(c *gin.Context) string {
	query := c.Request.URL.Query()
	keys := make([]string, 0, len(query))
	for k := range query {
		// 令牌不参与缓存键
		if k == "token" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(c.Request.URL.Path)
	b.WriteString("?")
	for _, k := range keys {
		values := query[k]
		sort.Strings(values)
		for _, v := range values {
			b.WriteString(k + "=" + v + "&")
		}
	}

	hasher := md5.New()
	hasher.Write([]byte(b.String()))
	return hex.EncodeToString(hasher.Sum(nil))
}

// Cache 缓存 GET 请求的成功响应
func Cache(rc *ResponseCache, expiration time.Duration) gin.HandlerFunc {
	if expiration <= 0 {
		expiration = 5 * time.Minute
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKey(c)
		if content, ok := rc.get(key, time.Now()); ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", content)
			c.Abort()
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if writer.Status() == http.StatusOK {
			rc.set(key, writer.body.Bytes(), expiration)
		}
	}
}

// responseWriter 捕获响应内容
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write 同时写入原始响应和缓冲区
func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// WriteString 同时写入原始响应和缓冲区
func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
