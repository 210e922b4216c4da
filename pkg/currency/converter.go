package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/resty.v1"
)

// ConversionError is returned when the remote rate source is unavailable or
// answers with an invalid rate. The payment flow propagates it unmodified.
type ConversionError struct {
	From   string
	To     string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("currency: cannot convert %s to %s: %s", e.From, e.To, e.Reason)
}

// Converter converts a cent amount from one currency to another.
type Converter interface {
	Convert(ctx context.Context, amount int64, from, to string) (int64, error)
}

// Client fetches exchange rates from an awesomeapi-compatible endpoint
// (GET {base}/json/last/{FROM}-{TO}).
type Client struct {
	http *resty.Client
}

// NewClient creates a rate client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetHostURL(baseURL).
		SetTimeout(timeout)
	return &Client{http: c}
}

// quote is the per-pair payload of the rate endpoint. Rates come back as
// decimal strings.
type quote struct {
	Ask string `json:"ask"`
	Bid string `json:"bid"`
}

// Convert fetches the ask rate for the from/to pair and applies it to the
// amount, rounding to the nearest cent.
func (c *Client) Convert(ctx context.Context, amount int64, from, to string) (int64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/json/last/%s-%s", from, to))
	if err != nil {
		return 0, &ConversionError{From: from, To: to, Reason: err.Error()}
	}
	if resp.StatusCode() != 200 {
		return 0, &ConversionError{From: from, To: to, Reason: fmt.Sprintf("rate source returned status %d", resp.StatusCode())}
	}

	var pairs map[string]quote
	if err := json.Unmarshal(resp.Body(), &pairs); err != nil {
		return 0, &ConversionError{From: from, To: to, Reason: "invalid rate response: " + err.Error()}
	}

	q, ok := pairs[from+to]
	if !ok {
		return 0, &ConversionError{From: from, To: to, Reason: "invalid currency pair"}
	}

	rate, err := strconv.ParseFloat(q.Ask, 64)
	if err != nil || rate <= 0 {
		return 0, &ConversionError{From: from, To: to, Reason: "invalid ask rate " + strconv.Quote(q.Ask)}
	}

	return int64(math.Round(float64(amount) * rate)), nil
}
