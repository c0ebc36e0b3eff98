package timezone

//go:generate go run go.uber.org/mock/mockgen -source=./database.go -destination=./mocks/database_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"4d63.com/tz"
	"github.com/rs/zerolog/log"
)

const utcName = "UTC"

// Database resolves zone names to zones. A zone returned without a Name is
// named by the resolver.
type Database interface {
	Lookup(name string) (Zone, error)
}

// Catalog lists the zone names a database can resolve.
type Catalog interface {
	Zones() ([]string, error)
}

// EmbeddedDatabase resolves names against the zoneinfo compiled into the binary.
type EmbeddedDatabase struct{}

func (EmbeddedDatabase) Lookup(name string) (Zone, error) {
	if name == "" {
		return Zone{}, errEmptyName
	}

	loc, err := tz.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("embedded database: %w", err)
	}

	return Zone{Location: loc}, nil
}

// SystemDatabase resolves names against zoneinfo files below a set of root
// paths, optionally falling back to the embedded database.
type SystemDatabase struct {
	roots    []string
	embedded bool
}

func NewSystemDatabase(roots []string, embedded bool) *SystemDatabase {
	return &SystemDatabase{
		roots:    cleanRoots(roots),
		embedded: embedded,
	}
}

// Roots returns the cleaned root paths searched by the database.
func (d *SystemDatabase) Roots() []string {
	return append([]string(nil), d.roots...)
}

func (d *SystemDatabase) Lookup(name string) (Zone, error) {
	if name == "" {
		return Zone{}, errEmptyName
	}

	if name == utcName {
		return Zone{Location: time.UTC}, nil
	}

	if filepath.IsAbs(name) {
		path := filepath.Clean(name)
		if !d.contains(path) {
			return Zone{}, errOutsideRoot
		}

		return loadFile(path, name)
	}

	if !validName(name) {
		return Zone{}, errInvalidName
	}

	for _, root := range d.roots {
		zone, err := loadFile(filepath.Join(root, name), name)
		if err == nil {
			return zone, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug().Err(err).Str("root", root).Str("timezone", name).Msg("skipping unreadable zone file")
		}
	}

	if d.embedded {
		return EmbeddedDatabase{}.Lookup(name)
	}

	return Zone{}, errNotFound
}

func (d *SystemDatabase) contains(path string) bool {
	for _, root := range d.roots {
		if strings.HasPrefix(path, rootPrefix(root)) {
			return true
		}
	}

	return false
}

func loadFile(path, name string) (Zone, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Zone{}, err //nolint:wrapcheck
	}

	if !info.Mode().IsRegular() {
		return Zone{}, fs.ErrNotExist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Zone{}, fmt.Errorf("read zone file: %w", err)
	}

	loc, err := time.LoadLocationFromTZData(name, data)
	if err != nil {
		return Zone{}, fmt.Errorf("parse zone file %s: %w", path, err)
	}

	return Zone{Location: loc}, nil
}

func validName(name string) bool {
	if strings.ContainsAny(name, "\\\x00") {
		return false
	}

	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}

	return true
}

func cleanRoots(roots []string) []string {
	cleaned := make([]string, 0, len(roots))
	seen := make(map[string]struct{}, len(roots))

	for _, root := range roots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}

		root = filepath.Clean(root)
		if _, ok := seen[root]; ok {
			continue
		}

		seen[root] = struct{}{}
		cleaned = append(cleaned, root)
	}

	return cleaned
}

func rootPrefix(root string) string {
	return strings.TrimSuffix(root, "/") + "/"
}
