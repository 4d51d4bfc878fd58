package mock

import "sitenav"

var _ sitenav.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of sitenav.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(content []byte) (string, bool)
}

func (e *TitleExtractor) ExtractTitle(content []byte) (string, bool) {
	return e.ExtractTitleFn(content)
}

var _ sitenav.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of sitenav.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn      func(ext string) sitenav.TitleExtractor
	RegisterFn func(ext string, e sitenav.TitleExtractor)
	ListFn     func() []string
}

func (r *ExtractorRegistry) Get(ext string) sitenav.TitleExtractor {
	return r.GetFn(ext)
}

func (r *ExtractorRegistry) Register(ext string, e sitenav.TitleExtractor) {
	r.RegisterFn(ext, e)
}

func (r *ExtractorRegistry) List() []string {
	return r.ListFn()
}
