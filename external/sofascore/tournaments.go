package sofascore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golazo-app/golazo-api/internal/domain/tournament"
	"github.com/valyala/fasthttp"
)

const (
	suggestionsPath          = "/search/suggestions/unique-tournaments?sport=football"
	defaultPrimaryColorHex   = "#cccccc"
	defaultSecondaryColorHex = "#333333"
)

type suggestionsEnvelope struct {
	Results []suggestionResult `json:"results"`
}

type suggestionResult struct {
	Entity suggestionEntity `json:"entity"`
}

type suggestionEntity struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Slug              string       `json:"slug"`
	Category          categoryItem `json:"category"`
	PrimaryColorHex   string       `json:"primaryColorHex"`
	SecondaryColorHex string       `json:"secondaryColorHex"`
}

// TournamentSuggestions fetches the unique-tournament catalog. The
// suggestions endpoint is latency-sensitive on the hot path, so it
// goes through fasthttp rather than the retrying net/http core.
func (c *Client) TournamentSuggestions(ctx context.Context) ([]tournament.Tournament, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + suggestionsPath)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	req.Header.SetUserAgent(c.userAgent)

	timeout := c.httpClient.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	if err := fasthttp.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("fetch tournament suggestions: %w", err)
	}
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, fmt.Errorf("fetch tournament suggestions: provider status=%d body=%s", code, abbreviateBody(resp.Body()))
	}

	var envelope suggestionsEnvelope
	if err := sonic.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode tournament suggestions: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(envelope.Results))
	for _, result := range envelope.Results {
		entity := result.Entity
		if entity.Name == "" {
			continue
		}

		id := entity.Slug
		if entity.ID > 0 {
			id = strconv.FormatInt(entity.ID, 10)
		}
		primary := entity.PrimaryColorHex
		if primary == "" {
			primary = defaultPrimaryColorHex
		}
		secondary := entity.SecondaryColorHex
		if secondary == "" {
			secondary = defaultSecondaryColorHex
		}

		out = append(out, tournament.Tournament{
			ID:             id,
			Name:           entity.Name,
			Slug:           entity.Slug,
			Country:        entity.Category.Country.Name,
			CountryCode:    entity.Category.Country.Alpha2,
			PrimaryColor:   primary,
			SecondaryColor: secondary,
		})
	}
	return out, nil
}
