package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"agrisense/entities"
	"agrisense/pkg/logger"
)

type openWeather struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logger.Logger
}

// NewOpenWeather talks to the OpenWeather geocoding, current weather and air
// pollution APIs under baseURL.
func NewOpenWeather(baseURL, apiKey string, timeout time.Duration, log logger.Logger) Provider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &openWeather{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		log:     logger.Component(log, "openweather"),
	}
}

type reverseGeoResponse []struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type currentWeatherResponse struct {
	Cod     interface{} `json:"cod"`
	Message string      `json:"message"`
	Name    string      `json:"name"`
	Main    struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

func (o *openWeather) Current(ctx context.Context, at entities.Coordinates) (*Observation, error) {
	city, err := o.reverseGeocode(ctx, at)
	if err != nil {
		return nil, err
	}

	var (
		cur currentWeatherResponse
		air airPollutionResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := o.coordQuery(at)
		q.Set("units", "metric")
		if err := o.getJSON(gctx, "/data/2.5/weather", q, &cur); err != nil {
			return fmt.Errorf("current weather: %w", err)
		}
		if fmt.Sprint(cur.Cod) != "200" {
			return fmt.Errorf("current weather: cod %v: %s", cur.Cod, cur.Message)
		}
		return nil
	})
	g.Go(func() error {
		if err := o.getJSON(gctx, "/data/2.5/air_pollution", o.coordQuery(at), &air); err != nil {
			return fmt.Errorf("air pollution: %w", err)
		}
		if len(air.List) == 0 {
			return fmt.Errorf("air pollution: empty list")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	obs := &Observation{
		City:        city,
		Temperature: cur.Main.Temp,
		AQI:         air.List[0].Main.AQI,
	}
	if len(cur.Weather) > 0 {
		obs.Condition = cur.Weather[0].Main
	}
	o.log.Debugf("observed %s: %.1f°C %s aqi=%d", obs.City, obs.Temperature, obs.Condition, obs.AQI)
	return obs, nil
}

// reverseGeocode returns "Name, CC", or "" when the API knows no place there.
func (o *openWeather) reverseGeocode(ctx context.Context, at entities.Coordinates) (string, error) {
	q := o.coordQuery(at)
	q.Set("limit", "1")
	var geo reverseGeoResponse
	if err := o.getJSON(ctx, "/geo/1.0/reverse", q, &geo); err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	if len(geo) == 0 || geo[0].Name == "" {
		return "", nil
	}
	if geo[0].Country == "" {
		return geo[0].Name, nil
	}
	return geo[0].Name + ", " + geo[0].Country, nil
}

func (o *openWeather) coordQuery(at entities.Coordinates) url.Values {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", at.Lat))
	q.Set("lon", fmt.Sprintf("%.4f", at.Lon))
	q.Set("appid", o.apiKey)
	return q
}

func (o *openWeather) getJSON(ctx context.Context, path string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
