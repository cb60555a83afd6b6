package convert

import (
	"os"
	"path/filepath"
	"strings"

	"skelobj/pkg/skel"
)

// SourceExts are the extensions SDPDir picks up.
var SourceExts = []string{".sdp", ".txt", ".xyz", ".bin", ".pcd"}

// SDPDir runs SDPToOBJ on every source file directly inside sourceDir and
// writes <name>.obj files to outDir. It stops at the first failure.
func SDPDir(sourceDir, outDir string, policy skel.Policy) (results []*Result, err error) {
	ds, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return nil, err
	}
	for _, d := range ds {
		fn := d.Name()
		if d.IsDir() || !isSource(fn) {
			continue
		}
		res, err := SDPToOBJ(SDPOptions{
			Input:  filepath.Join(sourceDir, fn),
			Output: filepath.Join(outDir, strings.TrimSuffix(fn, filepath.Ext(fn))),
			Policy: policy,
		})
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func isSource(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SourceExts {
		if ext == e {
			return true
		}
	}
	return false
}
