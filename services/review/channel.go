package review

import (
	"context"

	"urbpaddle/utils"

	"go.uber.org/zap"
)

// ClientPromptChannel surfaces the review prompt through the app: the server
// decides, the client shows the native in-app review dialog when told to.
// Trigger therefore succeeds as soon as the decision is handed back; the
// platform never reports whether the user engaged.
type ClientPromptChannel struct {
	Enabled  bool
	StoreURL string
}

func NewClientPromptChannel(enabled bool, storeURL string) *ClientPromptChannel {
	return &ClientPromptChannel{Enabled: enabled, StoreURL: storeURL}
}

func (c *ClientPromptChannel) IsAvailable() bool {
	return c.Enabled
}

func (c *ClientPromptChannel) Trigger(ctx context.Context) error {
	utils.GetLogger().Info("review: prompt trigger accepted", zap.Bool("directAction", c.HasDirectAction()))
	return nil
}

func (c *ClientPromptChannel) HasDirectAction() bool {
	return c.StoreURL != ""
}
