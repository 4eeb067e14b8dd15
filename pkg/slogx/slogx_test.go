package slogx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	return line
}

func TestNewRedactsPIIByDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := New(Config{Service: "doorman", Env: "test", Output: &buf})

	logger.Info("user created", "email", "alice@example.com", "user_id", "01USER")

	line := decodeLine(t, &buf)
	require.Equal(t, Redaction, line["email"])
	require.Equal(t, "01USER", line["user_id"])
	require.Equal(t, "doorman", line["service"])
}

func TestNewRedactsEmbeddedData(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := New(Config{Output: &buf})
	logger.Info("name=bob;email=bob@dylan.com;ssn=000;", "raw", "phone=0412;last_login=today;")

	line := decodeLine(t, &buf)
	require.Equal(t, "name=***;email=***;ssn=000;", line["msg"])
	require.Equal(t, "phone=***;last_login=today;", line["raw"])
}

func TestNewRedactionCanBeDisabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := New(Config{Output: &buf, RedactFields: []string{}})
	logger.Info("user created", "email", "alice@example.com")

	require.Equal(t, "alice@example.com", decodeLine(t, &buf)["email"])
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warning"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestFilterDatum(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		message string
		sep     string
		want    string
	}{
		{
			name:    "semicolon separated",
			fields:  []string{"password", "date_of_birth"},
			message: "name=egg;email=eggmin@eggsample.com;password=eggcellent;date_of_birth=12/12/1986;",
			sep:     ";",
			want:    "name=egg;email=eggmin@eggsample.com;password=xxx;date_of_birth=xxx;",
		},
		{
			name:    "regexp metacharacter separator",
			fields:  []string{"email"},
			message: "name=bob|email=bob@dylan.com|",
			sep:     "|",
			want:    "name=bob|email=xxx|",
		},
		{
			name:    "field without trailing separator is untouched",
			fields:  []string{"email"},
			message: "email=bob@dylan.com",
			sep:     ";",
			want:    "email=bob@dylan.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterDatum(tt.fields, "xxx", tt.message, tt.sep))
		})
	}
}

func TestHTTPMiddlewareAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var seen *slog.Logger
	h := HTTPMiddleware(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	require.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	line := decodeLine(t, &buf)
	require.Equal(t, "req-123", line["req_id"])
	require.Equal(t, float64(http.StatusTeapot), line["status"])
	require.Equal(t, "/profile", line["path"])
}

func TestHTTPMiddlewareGeneratesRequestID(t *testing.T) {
	h := HTTPMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, rec.Header().Get("X-Request-ID"), 26)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWithAttrsExtendsContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	FromContext(WithAttrs(ctx, "user_id", "01USER")).Info("resolved")
	require.Equal(t, "01USER", decodeLine(t, &buf)["user_id"])
}

func TestRedactAttrsHookIsReusable(t *testing.T) {
	hook := RedactAttrs(PIIFields)
	for range 3 {
		got := hook(nil, slog.String("raw", "email=a@b.c;phone=1;"))
		require.Equal(t, "email=***;phone=***;", got.Value.String())
	}
	require.Equal(t, Redaction, hook(nil, slog.String("email", "a@b.c")).Value.String())
	require.Equal(t, int64(7), hook(nil, slog.Int("count", 7)).Value.Int64())
}
