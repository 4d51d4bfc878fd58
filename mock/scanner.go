package mock

import (
	"context"

	"sitenav"
)

var _ sitenav.Scanner = (*Scanner)(nil)

// Scanner is a mock implementation of sitenav.Scanner.
type Scanner struct {
	ScanFn func(ctx context.Context, dir string, prefix string) ([]*sitenav.Item, error)
}

func (s *Scanner) Scan(ctx context.Context, dir string, prefix string) ([]*sitenav.Item, error) {
	return s.ScanFn(ctx, dir, prefix)
}
