package timezone

import "tzresolve/config"

// Many systems use /usr/share/zoneinfo, Solaris 2 has /usr/share/lib/zoneinfo,
// NixOS has /etc/zoneinfo.
var DefaultRootPaths = []string{
	"/usr/share/zoneinfo",
	"/usr/lib/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/etc/zoneinfo",
}

const (
	DefaultLocaltimePath = "/etc/localtime"
	DefaultZoneFilePath  = "/etc/timezone"
)

// RootPaths returns the configured root paths or DefaultRootPaths.
func RootPaths(cfg *config.Config) []string {
	if len(cfg.Timezone.RootPaths) == 0 {
		return DefaultRootPaths
	}

	return cfg.Timezone.RootPaths
}

func NewDatabase(cfg *config.Config) *SystemDatabase {
	return NewSystemDatabase(RootPaths(cfg), cfg.UseEmbedded())
}

func NewDetector(cfg *config.Config) *SystemDetector {
	localtimePath := cfg.Timezone.LocaltimePath
	if localtimePath == "" {
		localtimePath = DefaultLocaltimePath
	}

	zoneFilePath := cfg.Timezone.ZoneFilePath
	if zoneFilePath == "" {
		zoneFilePath = DefaultZoneFilePath
	}

	return NewSystemDetector(localtimePath, zoneFilePath, RootPaths(cfg))
}

// New builds the resolver used by the application from configuration.
func New(cfg *config.Config, database *SystemDatabase, detector *SystemDetector) *Resolver {
	return NewResolver(database, detector, RootPaths(cfg))
}
