package analyze

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	httputil "github.com/jmylchreest/huecheck/internal/util/http"
)

// SourceOptions configures Load.
type SourceOptions struct {
	Stdin   io.Reader
	Timeout time.Duration
}

// Load reads a stylesheet or image from a file path, "-" for stdin, or an
// http(s) URL.
func Load(ctx context.Context, source string, opts SourceOptions) ([]byte, error) {
	switch {
	case source == "-":
		if opts.Stdin == nil {
			opts.Stdin = os.Stdin
		}
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		data, err := httputil.Fetch(ctx, source, httputil.FetchOptions{
			Timeout: opts.Timeout,
			Headers: map[string]string{"Accept": "text/css,image/*;q=0.9,*/*;q=0.1"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		return data, nil
	}
}
