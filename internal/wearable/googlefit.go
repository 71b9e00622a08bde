package wearable

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/fitness/v1"
	"google.golang.org/api/option"
)

const (
	dataTypeSteps     = "com.google.step_count.delta"
	dataTypeHeartRate = "com.google.heart_rate.bpm"
	dataTypeCalories  = "com.google.calories.expended"

	// provider responses barely change within the hour, keep them cached
	dayTotalsCacheExpireSeconds = 60 * 60
	dayTotalsCacheSize          = 512 * 1024
)

// DayTotals is one day of aggregated activity coming from the provider.
type DayTotals struct {
	Steps          int     `json:"steps"`
	AvgHeartRate   float64 `json:"avgHeartRate"`
	CaloriesBurned int     `json:"caloriesBurned"`
}

type GoogleFitClientConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GoogleFitClient pulls daily activity totals from the Google Fit REST
// API with an offline-access refresh token. The OAuth consent dance is
// done elsewhere, this client only consumes the issued token.
type GoogleFitClient struct {
	service *fitness.Service
	cache   *freecache.Cache
}

func NewGoogleFitClient(ctx context.Context, config GoogleFitClientConfig) (*GoogleFitClient, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			fitness.FitnessActivityReadScope,
			fitness.FitnessHeartRateReadScope,
		},
	}
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: config.RefreshToken,
	})

	fitnessService, err := fitness.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("create fitness service: %w", err)
	}

	return &GoogleFitClient{
		service: fitnessService,
		cache:   freecache.NewCache(dayTotalsCacheSize),
	}, nil
}

// DayTotals aggregates steps, heart rate and burned calories for the
// given day (midnight to midnight UTC) into a single bucket.
func (c *GoogleFitClient) DayTotals(ctx context.Context, day time.Time) (*DayTotals, error) {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	cacheKey := []byte(fmt.Sprintf("day-totals::%s", dayStart.Format(time.DateOnly)))
	if cachedTotalsJson, err := c.cache.Get(cacheKey); err == nil {
		var cachedTotals DayTotals
		if err := json.Unmarshal(cachedTotalsJson, &cachedTotals); err == nil {
			log.Tracef("google fit day totals for %s served from cache", dayStart.Format(time.DateOnly))
			return &cachedTotals, nil
		}
	}

	aggregateResponse, err := c.service.Users.Dataset.
		Aggregate("me", &fitness.AggregateRequest{
			AggregateBy: []*fitness.AggregateBy{
				{DataTypeName: dataTypeSteps},
				{DataTypeName: dataTypeHeartRate},
				{DataTypeName: dataTypeCalories},
			},
			BucketByTime: &fitness.BucketByTime{
				DurationMillis: dayEnd.Sub(dayStart).Milliseconds(),
			},
			StartTimeMillis: dayStart.UnixMilli(),
			EndTimeMillis:   dayEnd.UnixMilli(),
		}).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("aggregate fitness data: %w", err)
	}

	totals := &DayTotals{}
	for _, bucket := range aggregateResponse.Bucket {
		for _, dataset := range bucket.Dataset {
			for _, point := range dataset.Point {
				if len(point.Value) == 0 {
					continue
				}
				switch {
				case strings.Contains(dataset.DataSourceId, "step_count"):
					totals.Steps += int(point.Value[0].IntVal)
				case strings.Contains(dataset.DataSourceId, "heart_rate"):
					// aggregate heart rate points come as [avg, max, min]
					totals.AvgHeartRate = point.Value[0].FpVal
				case strings.Contains(dataset.DataSourceId, "calories"):
					totals.CaloriesBurned += int(point.Value[0].FpVal)
				}
			}
		}
	}

	if totalsJson, err := json.Marshal(totals); err == nil {
		if err := c.cache.Set(cacheKey, totalsJson, dayTotalsCacheExpireSeconds); err != nil {
			log.Warnf("failed to cache google fit day totals: %s", err)
		}
	}

	return totals, nil
}
