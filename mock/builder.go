package mock

import (
	"context"

	"sitenav"
)

var _ sitenav.Builder = (*Builder)(nil)

// Builder is a mock implementation of sitenav.Builder.
type Builder struct {
	BuildFn func(ctx context.Context) []sitenav.Section
}

func (b *Builder) Build(ctx context.Context) []sitenav.Section {
	return b.BuildFn(ctx)
}
