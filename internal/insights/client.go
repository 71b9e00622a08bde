package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fittrackhq/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const maxInsights = 2

// minInsightLength filters out prompt echoes, blank lines and other
// model noise from the generated text.
const minInsightLength = 20

// FallbackInsights are served when the generator fails.
var FallbackInsights = []string{
	"Stay hydrated and keep up the great work!",
	"Focus on consistency to see long-term progress.",
}

// StaticInsights are served when no API key is configured, so local
// setups still get a sensible response.
var StaticInsights = []string{
	"Track your protein intake to improve muscle recovery.",
	"Try increasing your daily steps by 10% next week.",
}

// StatsSummary is the compact metrics digest sent to the generator.
type StatsSummary struct {
	TotalWorkouts int     `json:"totalWorkouts"`
	Streak        int     `json:"streak"`
	AvgPosture    float64 `json:"avgPosture"`
	TotalCals     int     `json:"totalCals"`
	TotalSteps    int     `json:"totalSteps"`
	AvgHeartRate  float64 `json:"avgHeartRate"`
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// Client talks to a hosted text-generation inference endpoint.
type Client struct {
	apiUrl     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiUrl, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		apiUrl:     apiUrl,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Generate asks the model for two short insights based on the summary.
func (c *Client) Generate(ctx context.Context, summary StatsSummary) (insights []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsClient.generate")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, fmt.Sprintf("generated %d insights", len(insights)))
		}
	}()

	if c.apiKey == "" {
		log.Warnln("insights api key not set, returning static insights")
		return StaticInsights, nil
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("marshal stats summary: %w", err)
	}

	prompt := fmt.Sprintf(
		"Generate 2 concise motivational and analytical fitness insights based on this user data: %s. "+
			"Analyze steps, heart rate, workouts, and posture. Short and professional.",
		summaryJson,
	)

	reqJson, err := json.Marshal(generateRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiUrl, bytes.NewReader(reqJson))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read insights api response bytes: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insights api status %d: %s", resp.StatusCode, respBytes)
	}

	var generateResponses []generateResponse
	if err := json.Unmarshal(respBytes, &generateResponses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insights api response bytes: %w", err)
	}

	generatedText := ""
	if len(generateResponses) > 0 {
		generatedText = generateResponses[0].GeneratedText
	}

	for _, line := range strings.Split(generatedText, "\n") {
		if len(line) <= minInsightLength {
			continue
		}
		insights = append(insights, line)
		if len(insights) == maxInsights {
			break
		}
	}

	return insights, nil
}
