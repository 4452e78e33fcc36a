package clipboard

import "context"

// Clipboard accepts text for the user's clipboard.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}
