package popularity

import (
	"context"
)

// Client is the generative-model transport. It returns the model's raw text
// output for a prompt.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
