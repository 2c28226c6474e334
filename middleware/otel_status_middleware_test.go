package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) (*tracetest.SpanRecorder, func()) {
	t.Helper()

	spanRecorder := tracetest.NewSpanRecorder()
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(spanRecorder),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tracerProvider)

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
	}

	return spanRecorder, cleanup
}

func runWithSpan(t *testing.T, handler echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	tracer := otel.Tracer("test")

	req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ctx, span := tracer.Start(req.Context(), "test-span")
	c.SetRequest(req.WithContext(ctx))

	err := OTelStatusMiddleware()(handler)(c)
	span.End()
	return rec, err
}

func statusCodeAttr(t *testing.T, span sdktrace.ReadOnlySpan) int64 {
	t.Helper()
	for _, attr := range span.Attributes() {
		if string(attr.Key) == "http.response.status_code" {
			return attr.Value.AsInt64()
		}
	}
	t.Fatal("http.response.status_code attribute not found")
	return 0
}

func TestOTelStatusMiddleware_2xxResponse_StatusUnset(t *testing.T) {
	spanRecorder, cleanup := setupTestTracer(t)
	defer cleanup()

	rec, err := runWithSpan(t, func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, int64(200), statusCodeAttr(t, spans[0]))
}

func TestOTelStatusMiddleware_4xxResponse_StatusUnset(t *testing.T) {
	spanRecorder, cleanup := setupTestTracer(t)
	defer cleanup()

	rec, err := runWithSpan(t, func(c echo.Context) error {
		return c.String(http.StatusNotFound, "not found")
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// 4xx is a client error, the span stays Unset
	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, int64(404), statusCodeAttr(t, spans[0]))
}

func TestOTelStatusMiddleware_5xxResponse_StatusError(t *testing.T) {
	spanRecorder, cleanup := setupTestTracer(t)
	defer cleanup()

	rec, err := runWithSpan(t, func(c echo.Context) error {
		return c.String(http.StatusInternalServerError, "internal error")
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "Internal Server Error", spans[0].Status().Description)
	assert.Equal(t, int64(500), statusCodeAttr(t, spans[0]))
}

func TestOTelStatusMiddleware_5xxWithError_RecordsError(t *testing.T) {
	spanRecorder, cleanup := setupTestTracer(t)
	defer cleanup()

	testErr := errors.New("upstream connection failed")

	_, err := runWithSpan(t, func(c echo.Context) error {
		c.Response().WriteHeader(http.StatusInternalServerError)
		return testErr
	})
	assert.Equal(t, testErr, err)

	spans := spanRecorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	var errorEventFound bool
	for _, event := range spans[0].Events() {
		if event.Name == "exception" {
			errorEventFound = true
			break
		}
	}
	assert.True(t, errorEventFound, "exception event not found in span")
}

func TestOTelStatusMiddleware_NoSpanInContext(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := OTelStatusMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "success")
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
