package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

// EchoStatusHeader makes the echo server answer with the given status code.
const EchoStatusHeader = "X-Echo-Status"

// Echo is the JSON document returned by the echo server.
type Echo struct {
	Method   string              `json:"method"`
	Path     string              `json:"path"`
	RawQuery string              `json:"raw_query"`
	Query    map[string][]string `json:"query"`
	Header   map[string][]string `json:"header"`
	Body     string              `json:"body"`
}

// NewEchoServer starts an HTTP server that answers every request with an
// Echo of it. The server is closed when the test ends.
func NewEchoServer(t testing.TB) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(EchoHandler())
	t.Cleanup(srv.Close)
	return srv
}

// EchoHandler returns the gin engine behind NewEchoServer.
func EchoHandler() http.Handler {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.NoRoute(echo)
	return engine
}

func echo(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusOK
	if v := c.GetHeader(EchoStatusHeader); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			status = code
		}
	}

	c.JSON(status, Echo{
		Method:   c.Request.Method,
		Path:     c.Request.URL.EscapedPath(),
		RawQuery: c.Request.URL.RawQuery,
		Query:    c.Request.URL.Query(),
		Header:   c.Request.Header,
		Body:     string(body),
	})
}
