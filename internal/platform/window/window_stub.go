//go:build !cgo

package window

import (
	"fmt"

	"github.com/vovakirdan/fractals/internal/core"
)

// Run reports that this build has no window backend.
func Run(Options) error {
	return fmt.Errorf("window: this build has no display support (rebuild with CGO_ENABLED=1 or use --terminal): %w", core.ErrResource)
}
