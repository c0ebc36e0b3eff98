package timezone

//go:generate go run go.uber.org/mock/mockgen -source=./detector.go -destination=./mocks/detector_mock.go -package=mocks

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const zoneinfoMarker = "zoneinfo/"

// LocalZone is what a detector reports about the host zone. Older detectors
// fill Zone, newer ones fill Key. Zone wins when both are set.
type LocalZone struct {
	Zone string
	Key  string
}

// ID returns the zone identifier by field precedence.
func (l LocalZone) ID() (string, error) {
	if l.Zone != "" {
		return l.Zone, nil
	}

	if l.Key != "" {
		return l.Key, nil
	}

	return "", ErrLocalZoneUnknown
}

// Detector reports the host's configured zone.
type Detector interface {
	Detect() (LocalZone, error)
}

// SystemDetector inspects the TZ variable and the host zone files.
type SystemDetector struct {
	localtimePath string
	zoneFilePath  string
	roots         []string
}

func NewSystemDetector(localtimePath, zoneFilePath string, roots []string) *SystemDetector {
	return &SystemDetector{
		localtimePath: localtimePath,
		zoneFilePath:  zoneFilePath,
		roots:         cleanRoots(roots),
	}
}

// Detect never fails; an undetectable host reports UTC.
func (d *SystemDetector) Detect() (LocalZone, error) {
	if name, ok := envZone(); ok {
		return LocalZone{Zone: name}, nil
	}

	key, err := d.zoneFile()
	if err == nil {
		return LocalZone{Key: key}, nil
	}

	log.Trace().Err(err).Str("path", d.zoneFilePath).Msg("zone file unavailable")

	key, err = d.localtimeLink()
	if err == nil {
		return LocalZone{Key: key}, nil
	}

	log.Warn().Err(err).Msg("Could not detect local timezone, using UTC as default")

	return LocalZone{Key: utcName}, nil
}

func envZone() (string, bool) {
	name, found := os.LookupEnv("TZ")
	if !found {
		return "", false
	}

	// TZ set but empty means UTC.
	name = strings.TrimPrefix(name, ":")
	if name == "" {
		return utcName, true
	}

	return name, true
}

func (d *SystemDetector) zoneFile() (string, error) {
	if d.zoneFilePath == "" {
		return "", os.ErrNotExist
	}

	file, err := os.Open(d.zoneFilePath)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return strings.Fields(line)[0], nil
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", d.zoneFilePath, err)
	}

	return "", fmt.Errorf("%s: %w", d.zoneFilePath, errEmptyName)
}

func (d *SystemDetector) localtimeLink() (string, error) {
	if d.localtimePath == "" {
		return "", os.ErrNotExist
	}

	target, err := os.Readlink(d.localtimePath)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", d.localtimePath, err)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(d.localtimePath), target)
	}

	target = filepath.Clean(target)

	for _, root := range d.roots {
		if strings.HasPrefix(target, rootPrefix(root)) {
			return target[len(rootPrefix(root)):], nil
		}
	}

	if idx := strings.LastIndex(target, zoneinfoMarker); idx >= 0 && idx+len(zoneinfoMarker) < len(target) {
		return target[idx+len(zoneinfoMarker):], nil
	}

	return "", errors.New("localtime does not point into a zoneinfo tree: " + target)
}
