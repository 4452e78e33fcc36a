package clipboard

import (
	"context"
	"fmt"
	"strings"

	sysclip "github.com/atotto/clipboard"
)

func (c *implSystem) Write(ctx context.Context, text string) error {
	if sysclip.Unsupported {
		return fmt.Errorf("system clipboard is not available")
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

func (c *implCommand) Write(ctx context.Context, text string) error {
	if _, err := c.executor.ExecuteWithInput(ctx, strings.NewReader(text), c.name, c.args...); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
