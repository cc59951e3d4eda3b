package llmsdk_test

import (
	"testing"
	"time"

	"github.com/picatz/llmsdk"
	"github.com/shoenig/test/must"
	"golang.org/x/time/rate"
)

func TestNewRateLimiters(t *testing.T) {
	rl := llmsdk.NewRateLimiters()

	perMinute := rate.Every(1 * time.Minute)

	must.NotNil(t, rl.Chat.Requests)
	must.Eq(t, perMinute, rl.Chat.Requests.Limit())
	must.Eq(t, 3500, rl.Chat.Requests.Burst())

	must.NotNil(t, rl.Chat.Tokens)
	must.Eq(t, perMinute, rl.Chat.Tokens.Limit())
	must.Eq(t, 90000, rl.Chat.Tokens.Burst())

	must.NotNil(t, rl.Embedding.Requests)
	must.Eq(t, perMinute, rl.Embedding.Requests.Limit())
	must.Eq(t, 3500, rl.Embedding.Requests.Burst())

	must.NotNil(t, rl.Embedding.Tokens)
	must.Eq(t, perMinute, rl.Embedding.Tokens.Limit())
	must.Eq(t, 350000, rl.Embedding.Tokens.Burst())

	must.NotNil(t, rl.Images.Requests)
	must.Eq(t, perMinute, rl.Images.Requests.Limit())
	must.Eq(t, 50, rl.Images.Requests.Burst())

	must.NotNil(t, rl.Audio.Requests)
	must.Eq(t, perMinute, rl.Audio.Requests.Limit())
	must.Eq(t, 50, rl.Audio.Requests.Burst())

	// Fresh limiters start with a full burst.
	must.True(t, rl.Chat.Requests.Allow())
	must.True(t, rl.Images.Requests.Allow())
}
