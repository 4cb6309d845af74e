package llm

import (
	"context"
	"errors"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one chat message in provider order. Role must be "system",
// "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Options tune a single completion request.
type Options struct {
	MaxTokens   int
	Temperature float32
	Stop        []string
}

// Provider is the streaming inference collaborator. StreamCompletion returns
// a channel of content chunks in arrival order; the channel is closed when
// the model finishes, the stream fails mid-flight, or ctx is canceled. An
// error is returned only when the request could not be started at all, which
// is what triggers the caller's simulation fallback.
type Provider interface {
	StreamCompletion(ctx context.Context, model string, msgs []Message, opts Options) (<-chan string, error)
}

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	api *openai.Client
}

// NewClient builds a provider against baseURL using the given credential.
func NewClient(token, baseURL string) *Client {
	cfg := openai.DefaultConfig(token)
	cfg.BaseURL = baseURL
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

func (c *Client) StreamCompletion(ctx context.Context, model string, msgs []Message, opts Options) (<-chan string, error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    oaMsgs,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Stop:        opts.Stop,
		Stream:      true,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer stream.Close()
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// Mid-stream failure: the response is already under way,
				// so the relay just ends here.
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			chunk := resp.Choices[0].Delta.Content
			if chunk == "" {
				continue
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
