package llm

import "time"

// maxOutputTokens caps the model's response size on every request to
// reduce the chance of hitting the attempt timeout mid-generation.
const maxOutputTokens = 4000

// Message is a single chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes one logical request-with-retries.
// The payload sent over the wire is built once from these fields and is
// identical across every attempt.
type CompletionRequest struct {
	APIKey     string
	Model      string
	Messages   []Message
	MaxRetries int           // total attempt budget, must be >= 1
	Timeout    time.Duration // per-attempt deadline, must be > 0
}

// wireRequest is the chat-completions request body.
type wireRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// wireResponse is the subset of the chat-completions response body we read.
type wireResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
