package chat_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/picatz/llmsdk"
	"github.com/picatz/llmsdk/internal/chat"
	"github.com/picatz/llmsdk/internal/chat/storage"
	pebbleStorage "github.com/picatz/llmsdk/internal/chat/storage/pebble"
	"github.com/shoenig/test/must"
)

func TestChatSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "Hello there!"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 1, "completion_tokens": 3, "total_tokens": 4}
		}`)
	}))
	t.Cleanup(srv.Close)

	var (
		client = llmsdk.NewClient("test-key", llmsdk.WithBaseURL(srv.URL))
		input  = bytes.NewBuffer(nil)
		output = bytes.NewBuffer(nil)
	)

	typeInTerminal := func(s string) {
		for line := range strings.Lines(s) {
			n, err := input.WriteString(line + "\r\n")
			must.NoError(t, err)
			must.Eq(t, len(line)+2, n)
		}
	}

	pebbleOptions := &pebble.Options{
		FS: vfs.NewMem(),
	}

	codec := &storage.JSONCodec[string, chat.ReqRespPair]{}

	memBackend, err := pebbleStorage.NewBackend("", pebbleOptions, codec)
	must.NoError(t, err)
	must.NotNil(t, memBackend)
	t.Cleanup(func() {
		must.NoError(t, memBackend.Close(t.Context()))
	})

	chatSession, restore, err := chat.NewSession(t.Context(), client, llmsdk.ModelGPT4o, input, output, memBackend)
	must.NoError(t, err)
	t.Cleanup(restore)
	must.NotNil(t, chatSession)

	typeInTerminal("hello")

	done, err := chatSession.RunOnce(t.Context())
	must.NoError(t, err)
	must.False(t, done)

	// The session keeps both sides of the exchange in its context window
	// and persists the pair to the backend.
	must.Len(t, 2, chatSession.Messages)
	must.Eq(t, llmsdk.ChatRoleAssistant, chatSession.Messages[1].Role)
	must.Eq(t, "Hello there!", chatSession.Messages[1].Content)
	must.Eq(t, 4, chatSession.CurrentTokensUsed)

	entries, _, err := memBackend.List(t.Context(), storage.PageSize(10), nil)
	must.NoError(t, err)

	var stored int
	for _, pair := range entries {
		stored++
		must.Eq(t, "hello", pair.Req.Content)
		must.Eq(t, "Hello there!", pair.Resp.Content)
	}
	must.Eq(t, 1, stored)
}

func TestChunkString(t *testing.T) {
	chunks, err := chat.ChunkString("one two three four five six seven eight", 4)
	must.NoError(t, err)
	must.True(t, len(chunks) > 1)

	_, err = chat.ChunkString("anything", 0)
	must.Error(t, err)
}
