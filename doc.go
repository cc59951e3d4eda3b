// Package llmsdk is a typed client for OpenAI-compatible APIs: chat
// completions, embeddings, audio transcription and translation, speech
// synthesis, image generation, and moderation.
//
// Requests are built with per-operation constructors and chained With*
// setters, sent by a [Client] bound to a base URL and API key, and decoded
// into typed responses. Every failure is one of the three [SDKError] kinds:
// [*TransportError], [*APIError], or [*DecodeError]. The client performs no
// retries and sets no timeouts; both are caller concerns, via the provided
// HTTP client or a context deadline.
package llmsdk
