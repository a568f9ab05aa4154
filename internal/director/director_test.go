package director

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodRecord = `{
  "colorTheme": "sunset blaze",
  "dominantHue": 0.08,
  "colorMode": "contrast",
  "colorSpread": 0.3,
  "energyFlow": "pulsing",
  "energyIntensity": 0.8,
  "shapeBehavior": "frenetic"
}`

func TestDecode(t *testing.T) {
	p, err := Decode([]byte(goodRecord))
	require.NoError(t, err)
	assert.Equal(t, params.Params{
		ColorTheme:      "sunset blaze",
		DominantHue:     0.08,
		ColorMode:       palette.Contrast,
		ColorSpread:     0.3,
		EnergyFlow:      params.Pulsing,
		EnergyIntensity: 0.8,
		ShapeBehavior:   params.Frenetic,
	}, p)

	fenced := "Here you go:\n```json\n" + goodRecord + "\n```"
	p2, err := Decode([]byte(fenced))
	require.NoError(t, err)
	assert.Equal(t, p, p2)
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"not json":      "no braces here",
		"malformed":     `{"dominantHue": }`,
		"missing field": `{"dominantHue": 0.2, "colorMode": "triad"}`,
		"bad enum":      `{"dominantHue":0.2,"colorMode":"plaid","colorSpread":0.2,"energyFlow":"inward","energyIntensity":0.5,"shapeBehavior":"standard"}`,
		"hue range":     `{"dominantHue":1.2,"colorMode":"triad","colorSpread":0.2,"energyFlow":"inward","energyIntensity":0.5,"shapeBehavior":"standard"}`,
		"wrong type":    `{"dominantHue":"high","colorMode":"triad","colorSpread":0.2,"energyFlow":"inward","energyIntensity":0.5,"shapeBehavior":"standard"}`,
	}
	for name, body := range tests {
		_, err := Decode([]byte(body))
		assert.Error(t, err, name)
	}
}

func TestChatSourceFetch(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": goodRecord}},
			},
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	src := &ChatSource{Endpoint: srv.URL, Model: "test-model", APIKey: "secret", Client: srv.Client()}
	p, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, params.Frenetic, p.ShapeBehavior)

	assert.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, SystemPrompt, got.Messages[0].Content)
	assert.Equal(t, UserPrompt, got.Messages[1].Content)
	assert.Equal(t, "json_object", got.ResponseFormat["type"])
}

func TestChatSourceHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := &ChatSource{Endpoint: srv.URL, Client: srv.Client()}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestResolveFallback(t *testing.T) {
	var buf bytes.Buffer
	d := New(Offline, Options{Logger: log.New(&buf, "", 0), Seed: 7})

	for i := 0; i < 50; i++ {
		u := d.Resolve(context.Background())
		require.True(t, u.Fallback)
		assert.Equal(t, ErrOffline, errors.Cause(u.Err))
		assert.Empty(t, u.Palette)
		assert.NoError(t, u.Params.Validate())
		assert.GreaterOrEqual(t, u.Params.DominantHue, 0.0)
		assert.Less(t, u.Params.DominantHue, 1.0)
		assert.GreaterOrEqual(t, u.Params.EnergyIntensity, 0.3)
		assert.LessOrEqual(t, u.Params.EnergyIntensity, 1.0)
	}
	assert.Contains(t, buf.String(), "using random parameters")
}

func TestResolveRevalidates(t *testing.T) {
	bad := SourceFunc(func(context.Context) (params.Params, error) {
		return params.Params{DominantHue: 3}, nil
	})
	u := New(bad, Options{Seed: 1}).Resolve(context.Background())
	assert.True(t, u.Fallback)
	assert.ErrorIs(t, u.Err, params.ErrInvalid)
}

func TestResolveSelectsPalette(t *testing.T) {
	p, err := Decode([]byte(goodRecord))
	require.NoError(t, err)
	u := New(Static(p), Options{Seed: 1}).Resolve(context.Background())
	assert.False(t, u.Fallback)
	assert.Equal(t, palette.Sunset, u.Palette)
}

func TestTriggerSingleFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 4)
	src := SourceFunc(func(ctx context.Context) (params.Params, error) {
		started <- struct{}{}
		<-release
		return Decode([]byte(goodRecord))
	})
	d := New(src, Options{Seed: 3})
	ctx := context.Background()

	require.True(t, d.Trigger(ctx))
	<-started
	assert.False(t, d.Trigger(ctx), "second cycle must be skipped while the first is pending")

	close(release)
	select {
	case u := <-d.Updates():
		assert.False(t, u.Fallback)
	case <-time.After(2 * time.Second):
		t.Fatal("update was not published")
	}
	d.Wait()

	assert.True(t, d.Trigger(ctx))
	<-started
	d.Wait()
	assert.Len(t, d.Updates(), 1)
}

func TestTriggerDiscardsAfterCancel(t *testing.T) {
	src := SourceFunc(func(ctx context.Context) (params.Params, error) {
		<-ctx.Done()
		return params.Params{}, ctx.Err()
	})
	d := New(src, Options{Seed: 3})
	ctx, cancel := context.WithCancel(context.Background())

	require.True(t, d.Trigger(ctx))
	cancel()
	d.Wait()
	assert.Len(t, d.Updates(), 0)
}

func TestRunStopsOnCancel(t *testing.T) {
	d := New(Offline, Options{Interval: 5 * time.Millisecond, Seed: 2})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case u := <-d.Updates():
		assert.True(t, u.Fallback)
	case <-time.After(2 * time.Second):
		t.Fatal("startup cycle did not publish")
	}
	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}
