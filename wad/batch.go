package wad

import (
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Glob lists the WAD files directly inside dir, sorted by name.
func Glob(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, GlobPattern))
	if err != nil {
		return nil, errors.Wrapf(err, `Glob error matching files in "%s"`, dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// InspectFiles inspects every path in order. A failure is recorded in that
// file's Result and does not stop the others.
func InspectFiles(paths []string, withTitle bool) []Result {
	return lo.Map(
		paths,
		func(path string, _ int) Result {
			inspection, err := InspectFile(path, withTitle)
			return Result{
				Path:       path,
				Inspection: inspection,
				Err:        err,
			}
		},
	)
}

func Failed(results []Result) []Result {
	return lo.Filter(
		results,
		func(result Result, _ int) bool {
			return result.Err != nil
		},
	)
}
