package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/andrKonan/ProjectAutomate-server/internal/platform/ctxutil"
)

func TestAttachRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(AttachRequestContext())
	r.GET("/ping", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-1" || seen.TraceID == "" {
		t.Fatalf("unexpected trace data: %+v", seen)
	}
	if got := rec.Header().Get(HeaderRequestID); got != "req-1" {
		t.Fatalf("request id not echoed: %q", got)
	}
	if got := rec.Header().Get(HeaderTraceID); got != seen.TraceID {
		t.Fatalf("trace id header %q != context %q", got, seen.TraceID)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Fatalf("expected generated request id")
	}
}
