package entity

// Chat completion wire types, shaped after the Azure OpenAI chat API.

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type ChatCompletionResponse struct {
	Choices []ChatChoice `json:"choices"`
}

// CompletionOptions control one completion call
type CompletionOptions struct {
	Temperature float64
	// ForceJSON instructs the backend to emit a directly parseable JSON object
	ForceJSON bool
}
