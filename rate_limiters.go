package llmsdk

import (
	"time"

	"golang.org/x/time/rate"
)

// RateLimiters holds advisory rate limiters matching the provider's default
// per-endpoint limits.
//
// The client does not enforce these; callers that want client-side limiting
// check the appropriate limiter before making a request.
//
// # Example
//
//	// If the rate limiter allows the request, make the request.
//	if llmsdk.RateLimits.Chat.Requests.Allow() {
//	    resp, err := client.ChatCompletion(ctx, req)
//	    ...
//	}
//
//	// Or wait for the rate limiter to allow the request.
//	if err := llmsdk.RateLimits.Chat.Requests.Wait(ctx); err == nil {
//	    resp, err := client.ChatCompletion(ctx, req)
//	    ...
//	}
type RateLimiters struct {
	Chat struct {
		Requests *rate.Limiter
		Tokens   *rate.Limiter
	}
	Embedding struct {
		Requests *rate.Limiter
		Tokens   *rate.Limiter
	}
	Images struct {
		Requests *rate.Limiter
	}
	Audio struct {
		Requests *rate.Limiter
	}
}

// RateLimits is the default set of rate limiters.
//
// # Multiple Organizations
//
// Limits apply per organization; users with multiple organizations should
// create a set per organization with [NewRateLimiters].
var RateLimits = NewRateLimiters()

// NewRateLimiters returns a new set of advisory rate limiters initialized to
// the provider's published default limits.
func NewRateLimiters() *RateLimiters {
	rl := &RateLimiters{}

	rl.Chat.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 3500)
	rl.Chat.Tokens = rate.NewLimiter(rate.Every(1*time.Minute), 90000)

	rl.Embedding.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 3500)
	rl.Embedding.Tokens = rate.NewLimiter(rate.Every(1*time.Minute), 350000)

	rl.Images.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 50)

	rl.Audio.Requests = rate.NewLimiter(rate.Every(1*time.Minute), 50)

	return rl
}
