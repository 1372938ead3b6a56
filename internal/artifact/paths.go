package artifact

import "path/filepath"

// resolve maps a configured path onto the filesystem. Relative paths are
// taken from root; an absolute output directory is used as is.
func resolve(root, path string) string {
	native := filepath.FromSlash(path)
	if filepath.IsAbs(native) {
		return native
	}
	return filepath.Join(root, native)
}
