package fs

import (
	"os"

	"sitenav"
)

// ReadPageMeta reads the front matter of the page file at path. It never
// fails: a missing or unreadable file yields empty metadata, as does a file
// without a front-matter block.
func ReadPageMeta(path string) sitenav.PageMeta {
	content, err := os.ReadFile(path)
	if err != nil {
		return sitenav.PageMeta{}
	}
	return sitenav.ParseFrontMatter(string(content))
}
