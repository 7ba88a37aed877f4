package export

import "strings"

// MediaResolver turns a media filename into the path or URL embedded in a
// document. The choice between local and remote paths is made once per run.
type MediaResolver struct {
	baseURL  string
	localDir string
}

// NewMediaResolver returns a resolver that links to baseURL when it is set
// and to files under localDir otherwise.
func NewMediaResolver(localDir, baseURL string) MediaResolver {
	return MediaResolver{
		baseURL:  strings.TrimSpace(baseURL),
		localDir: localDir,
	}
}

// Remote reports whether images resolve to URLs under a base URL.
func (m MediaResolver) Remote() bool {
	return m.baseURL != ""
}

// Resolve returns the embed target for filename.
// Paths are always joined with '/', which markdown expects on every platform.
func (m MediaResolver) Resolve(filename string) string {
	if m.Remote() {
		return strings.TrimSuffix(m.baseURL, "/") + "/" + filename
	}
	dir := strings.TrimSuffix(m.localDir, "/")
	if dir == "" {
		return filename
	}
	return dir + "/" + filename
}
