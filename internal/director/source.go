// Package director periodically replaces the godforce parameter record,
// sourcing new records from a remote text-generation endpoint and falling
// back to random ones whenever that fails.
package director

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"godforce-ca/internal/palette"
	"godforce-ca/internal/params"

	"github.com/pkg/errors"
)

// ErrOffline is returned by the offline source on every fetch.
var ErrOffline = errors.New("director: parameter source disabled")

// SystemPrompt asks the model for the six-field record plus a theme label.
const SystemPrompt = `Generate creative parameters for a vibrant, colorful visual art experience.
Respond directly with JSON, following this JSON schema, and no other text.
{
  "colorTheme": string,      // A descriptive colorful theme like "neon jungle", "sunset blaze", "cosmic rainbow"
  "dominantHue": number,     // A value between 0 and 1
  "colorMode": string,       // One of: "harmony", "contrast", "triad", "rainbow"
  "colorSpread": number,     // A value between 0.05 and 0.5
  "energyFlow": string,      // One of: "outward", "inward", "pulsing", "chaotic"
  "energyIntensity": number, // A value between 0.3 and 1
  "shapeBehavior": string    // One of: "standard", "frenetic", "peaceful", "crystalline"
}`

// UserPrompt is sent with every request.
const UserPrompt = "Create a beautiful, immersive, and vividly colorful scheme for a 3D game of life visualization. Focus on bright, saturated colors."

const maxResponseBytes = 1 << 20

// Source produces candidate parameter records.
type Source interface {
	Fetch(ctx context.Context) (params.Params, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (params.Params, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) (params.Params, error) { return f(ctx) }

// Offline is a Source that always fails, so every cycle takes the fallback
// path.
var Offline Source = SourceFunc(func(context.Context) (params.Params, error) {
	return params.Params{}, ErrOffline
})

// Static returns a Source that always yields p.
func Static(p params.Params) Source {
	return SourceFunc(func(context.Context) (params.Params, error) { return p, nil })
}

// ChatSource requests records from an OpenAI-compatible chat completions
// endpoint.
type ChatSource struct {
	Endpoint string
	Model    string
	APIKey   string
	Client   *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Fetch performs one request/response exchange.
func (s *ChatSource) Fetch(ctx context.Context) (params.Params, error) {
	body, err := json.Marshal(chatRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserPrompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return params.Params{}, errors.Wrap(err, "encoding request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return params.Params{}, errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return params.Params{}, errors.Wrap(err, "requesting parameters")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return params.Params{}, errors.Wrap(err, "reading response")
	}
	if resp.StatusCode/100 != 2 {
		return params.Params{}, errors.Errorf("parameter source returned %s: %s", resp.Status, snippet(data))
	}

	var cr chatResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		return params.Params{}, errors.Wrap(err, "decoding completion")
	}
	if len(cr.Choices) == 0 {
		return params.Params{}, errors.New("completion has no choices")
	}
	return Decode([]byte(cr.Choices[0].Message.Content))
}

type wireParams struct {
	ColorTheme      *string  `json:"colorTheme"`
	DominantHue     *float64 `json:"dominantHue"`
	ColorMode       *string  `json:"colorMode"`
	ColorSpread     *float64 `json:"colorSpread"`
	EnergyFlow      *string  `json:"energyFlow"`
	EnergyIntensity *float64 `json:"energyIntensity"`
	ShapeBehavior   *string  `json:"shapeBehavior"`
}

// Decode parses a JSON record, tolerating surrounding prose or code fences,
// and rejects missing fields and out-of-range values.
func Decode(data []byte) (params.Params, error) {
	start := bytes.IndexByte(data, '{')
	end := bytes.LastIndexByte(data, '}')
	if start < 0 || end < start {
		return params.Params{}, errors.Errorf("no JSON object in %q", snippet(data))
	}

	var w wireParams
	if err := json.Unmarshal(data[start:end+1], &w); err != nil {
		return params.Params{}, errors.Wrap(err, "decoding parameters")
	}
	var missing []string
	if w.DominantHue == nil {
		missing = append(missing, "dominantHue")
	}
	if w.ColorMode == nil {
		missing = append(missing, "colorMode")
	}
	if w.ColorSpread == nil {
		missing = append(missing, "colorSpread")
	}
	if w.EnergyFlow == nil {
		missing = append(missing, "energyFlow")
	}
	if w.EnergyIntensity == nil {
		missing = append(missing, "energyIntensity")
	}
	if w.ShapeBehavior == nil {
		missing = append(missing, "shapeBehavior")
	}
	if len(missing) > 0 {
		return params.Params{}, errors.Errorf("parameters missing %s", strings.Join(missing, ", "))
	}

	p := params.Params{
		DominantHue:     *w.DominantHue,
		ColorMode:       palette.Mode(strings.ToLower(*w.ColorMode)),
		ColorSpread:     *w.ColorSpread,
		EnergyFlow:      params.EnergyFlow(strings.ToLower(*w.EnergyFlow)),
		EnergyIntensity: *w.EnergyIntensity,
		ShapeBehavior:   params.ShapeBehavior(strings.ToLower(*w.ShapeBehavior)),
	}
	if w.ColorTheme != nil {
		p.ColorTheme = *w.ColorTheme
	}
	if err := p.Validate(); err != nil {
		return params.Params{}, err
	}
	return p, nil
}

func snippet(b []byte) string {
	const max = 120
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return fmt.Sprintf("%s...", s[:max])
	}
	return s
}
