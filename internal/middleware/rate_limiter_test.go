package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RateLimiterTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestRateLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (s *RateLimiterTestSuite) SetupTest() {
	s.echo = echo.New()
	// Reset shared visitor state between tests
	mu.Lock()
	visitors = make(map[string]*visitor)
	mu.Unlock()
}

func (s *RateLimiterTestSuite) request(middleware echo.MiddlewareFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec
}

func (s *RateLimiterTestSuite) TestAllowsWithinBurst() {
	limiter := RateLimiterWithConfig(5, 10)

	for i := 0; i < 10; i++ {
		rec := s.request(limiter, "10.0.0.1")
		s.Equal(http.StatusOK, rec.Code, "request %d", i)
	}
}

func (s *RateLimiterTestSuite) TestRejectsBeyondBurst() {
	limiter := RateLimiterWithConfig(1, 2)

	s.Equal(http.StatusOK, s.request(limiter, "10.0.0.2").Code)
	s.Equal(http.StatusOK, s.request(limiter, "10.0.0.2").Code)

	rec := s.request(limiter, "10.0.0.2")
	s.Equal(http.StatusTooManyRequests, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_003")
}

func (s *RateLimiterTestSuite) TestLimitsPerIP() {
	limiter := RateLimiterWithConfig(1, 1)

	s.Equal(http.StatusOK, s.request(limiter, "10.0.0.3").Code)
	s.Equal(http.StatusTooManyRequests, s.request(limiter, "10.0.0.3").Code)

	// A different caller gets its own bucket
	s.Equal(http.StatusOK, s.request(limiter, "10.0.0.4").Code)
}

func (s *RateLimiterTestSuite) callRequest(middleware echo.MiddlewareFunc, callID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", nil)
	req.Header.Set("X-Real-IP", "198.51.100.9")
	req.Header.Set(CallIDHeader, callID)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := middleware(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return rec
}

func (s *RateLimiterTestSuite) TestLimitsPerCall() {
	limiter := RateLimiterWithConfig(1, 1)

	s.Equal(http.StatusOK, s.callRequest(limiter, "call-a").Code)
	s.Equal(http.StatusTooManyRequests, s.callRequest(limiter, "call-a").Code)

	// A second call behind the same platform IP is not starved
	s.Equal(http.StatusOK, s.callRequest(limiter, "call-b").Code)
}

func (s *RateLimiterTestSuite) TestCallKeyTrackedSeparatelyFromIP() {
	limiter := RateLimiterWithConfig(1, 1)

	s.Equal(http.StatusOK, s.callRequest(limiter, "call-c").Code)

	mu.RLock()
	_, tracked := visitors["call:call-c"]
	mu.RUnlock()
	s.True(tracked)
}

func (s *RateLimiterTestSuite) TestXForwardedForPreferred() {
	limiter := RateLimiterWithConfig(1, 1)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := limiter(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))

	mu.RLock()
	_, tracked := visitors["203.0.113.7"]
	mu.RUnlock()
	s.True(tracked, fmt.Sprintf("visitors: %v", visitors))
}
