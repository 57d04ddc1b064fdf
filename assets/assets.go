// Package assets embeds the arena maps.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
)

//go:embed levels/*.tmx
var assetFS embed.FS

// FS is the embedded asset tree rooted at the package directory, as
// expected by the level loader.
func FS() fs.FS {
	return assetFS
}

// Levels lists the embedded map paths in name order.
func Levels() []string {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			out = append(out, path.Join("levels", entry.Name()))
		}
	}
	sort.Strings(out)
	return out
}
