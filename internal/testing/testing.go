// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// MockProvider is a configurable test double for the upstream music service.
// Each func field overrides one operation; nil fields return zero values, so
// tests only wire the calls they care about.
type MockProvider struct {
	AuthCodeURLFunc      func(state string) string
	ExchangeFunc         func(ctx context.Context, code string) (*oauth2.Token, error)
	RefreshFunc          func(ctx context.Context, refreshToken string) (*oauth2.Token, error)
	CurrentlyPlayingFunc func(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error)
	PlayFunc             func(ctx context.Context, accessToken string) error
	PauseFunc            func(ctx context.Context, accessToken string) error
	NextFunc             func(ctx context.Context, accessToken string) error
	PreviousFunc         func(ctx context.Context, accessToken string) error
}

func (m *MockProvider) AuthCodeURL(state string) string {
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}
	return "https://accounts.spotify.com/authorize?state=" + state
}

func (m *MockProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return &oauth2.Token{AccessToken: "mock_access_token"}, nil
}

func (m *MockProvider) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &oauth2.Token{AccessToken: "mock_refreshed_token"}, nil
}

func (m *MockProvider) CurrentlyPlaying(ctx context.Context, accessToken string) (*spotify.CurrentlyPlaying, error) {
	if m.CurrentlyPlayingFunc != nil {
		return m.CurrentlyPlayingFunc(ctx, accessToken)
	}
	return &spotify.CurrentlyPlaying{}, nil
}

func (m *MockProvider) Play(ctx context.Context, accessToken string) error {
	if m.PlayFunc != nil {
		return m.PlayFunc(ctx, accessToken)
	}
	return nil
}

func (m *MockProvider) Pause(ctx context.Context, accessToken string) error {
	if m.PauseFunc != nil {
		return m.PauseFunc(ctx, accessToken)
	}
	return nil
}

func (m *MockProvider) Next(ctx context.Context, accessToken string) error {
	if m.NextFunc != nil {
		return m.NextFunc(ctx, accessToken)
	}
	return nil
}

func (m *MockProvider) Previous(ctx context.Context, accessToken string) error {
	if m.PreviousFunc != nil {
		return m.PreviousFunc(ctx, accessToken)
	}
	return nil
}

func (m *MockProvider) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// NewJSONResponse builds a canned HTTP response carrying a JSON body, for use
// with [MockRoundTripper].
func NewJSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
