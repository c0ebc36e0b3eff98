package timezone

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
)

var tzifMagic = []byte("TZif")

// Trees and files under a zoneinfo root that are not zone identifiers.
var (
	skippedDirs  = []string{"posix", "right"}
	skippedFiles = []string{"localtime", "posixrules", "Factory"}
)

// Zones lists the identifiers of every zone file below the root paths,
// sorted and without duplicates. Missing roots are skipped.
func (d *SystemDatabase) Zones() ([]string, error) {
	seen := make(map[string]struct{})

	for _, root := range d.roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}

		err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				log.Debug().Err(err).Str("path", path).Msg("skipping unreadable catalog entry")

				return nil
			}

			if entry.IsDir() {
				if path != root && slices.Contains(skippedDirs, entry.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if slices.Contains(skippedFiles, entry.Name()) || !entry.Type().IsRegular() || !isTZif(path) {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil //nolint:nilerr
			}

			seen[filepath.ToSlash(rel)] = struct{}{}

			return nil
		})
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	zones := make([]string, 0, len(seen))
	for zone := range seen {
		zones = append(zones, zone)
	}

	slices.Sort(zones)

	return zones, nil
}

func isTZif(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	magic := make([]byte, len(tzifMagic))
	if _, err := io.ReadFull(file, magic); err != nil {
		return false
	}

	return bytes.Equal(magic, tzifMagic)
}
