package utilities

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// ContextOption prepares the test context before the handler runs.
type ContextOption func(c *gin.Context)

// WithContextValue stores value under key, the way the auth middleware
// stores "user" and "claims".
func WithContextValue(key string, value interface{}) ContextOption {
	return func(c *gin.Context) {
		c.Set(key, value)
	}
}

// SimulateAPICall runs handlerFunc on a fresh test context without a router.
// A nil body sends an empty request body. The response is decoded when it
// has one.
func SimulateAPICall(
	handlerFunc func(*gin.Context),
	route string,
	method string,
	body interface{},
	opts ...ContextOption,
) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(b)
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	req, err := http.NewRequest(method, route, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	for _, opt := range opts {
		opt(c)
	}

	handlerFunc(c)

	if rec.Body.Len() == 0 {
		return rec, nil, nil
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return rec, nil, err
	}
	return rec, resp, nil
}
