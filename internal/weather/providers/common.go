package providers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-forecast/internal/weather"
)

// HTTPClientConfig bundles the HTTP client and the optional circuit breaker.
type HTTPClientConfig struct {
	Client  *http.Client
	Breaker bool
}

var errCircuitOpen = errors.New("circuit breaker open")

// maxErrorBody caps how much of a non-2xx body is kept in a StatusError.
const maxErrorBody = 512

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// doRequest executes req exactly once. When cb is non-nil the round trip goes
// through it, and an open breaker fails the call without touching the network.
func doRequest(client *http.Client, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	roundTrip := func() (interface{}, error) {
		resp, err := client.Do(req)
		if err != nil {
			return nil, &weather.TransportError{Err: err}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return nil, &weather.StatusError{
				StatusCode: resp.StatusCode,
				Body:       strings.TrimSpace(string(body)),
			}
		}
		return resp, nil
	}

	var (
		result interface{}
		err    error
	)
	if cb == nil {
		result, err = roundTrip()
	} else {
		result, err = cb.Execute(roundTrip)
	}

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &weather.TransportError{Err: fmt.Errorf("%w: %v", errCircuitOpen, err)}
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, &weather.TransportError{Err: fmt.Errorf("unexpected result type from circuit breaker")}
	}
	return resp, nil
}
