package timezone_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzresolve/shared/timezone"
)

const istOffset = 5*3600 + 30*60

func zoneRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Test", "Fixed"), fixedTZif("IST", istOffset))

	return root
}

func TestSystemDatabase_Lookup(t *testing.T) {
	root := zoneRoot(t)
	writeFile(t, filepath.Join(root, "Broken"), []byte("not a zone file"))

	tests := []struct {
		name       string
		embedded   bool
		input      string
		wantOffset time.Duration
		wantErr    bool
	}{
		{name: "relative name under root", input: "Test/Fixed", wantOffset: istOffset * time.Second},
		{name: "absolute path under root", input: filepath.Join(root, "Test", "Fixed"), wantOffset: istOffset * time.Second},
		{name: "UTC without files", input: "UTC", wantOffset: 0},
		{name: "embedded fallback", embedded: true, input: "Asia/Tokyo", wantOffset: 9 * time.Hour},
		{name: "embedded disabled", input: "Asia/Tokyo", wantErr: true},
		{name: "empty name", embedded: true, input: "", wantErr: true},
		{name: "parent traversal", embedded: true, input: "../Test/Fixed", wantErr: true},
		{name: "absolute path outside roots", embedded: true, input: "/etc/passwd", wantErr: true},
		{name: "directory is not a zone", input: "Test", wantErr: true},
		{name: "malformed zone file", input: "Broken", wantErr: true},
		{name: "unknown zone", embedded: true, input: "Not/AZone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := timezone.NewSystemDatabase([]string{root}, tt.embedded)

			zone, err := db.Lookup(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, zone.Location)
			assert.Empty(t, zone.Name)
			assert.Equal(t, tt.wantOffset, zone.Offset(winter))
		})
	}
}

func TestSystemDatabase_RootOrder(t *testing.T) {
	first := t.TempDir()
	second := zoneRoot(t)
	writeFile(t, filepath.Join(first, "Test", "Fixed"), fixedTZif("EAT", 3*3600))

	zone, err := timezone.NewSystemDatabase([]string{first, second}, false).Lookup("Test/Fixed")
	require.NoError(t, err)

	assert.Equal(t, "EAT", zone.Abbreviation(winter))
}

func TestSystemDatabase_Roots(t *testing.T) {
	db := timezone.NewSystemDatabase([]string{"/usr/share/zoneinfo/", " ", "/usr/share/zoneinfo", "/etc/zoneinfo"}, false)

	assert.Equal(t, []string{"/usr/share/zoneinfo", "/etc/zoneinfo"}, db.Roots())
}

func TestResolver_StripsConfiguredRoot(t *testing.T) {
	root := zoneRoot(t)
	db := timezone.NewSystemDatabase([]string{root}, false)

	zone, err := timezone.NewResolver(db, nil, []string{root}).Resolve(filepath.Join(root, "Test", "Fixed"))
	require.NoError(t, err)

	assert.Equal(t, "Test/Fixed", zone.Name)
	assert.Equal(t, "Test/Fixed", zone.String())
	assert.Equal(t, istOffset*time.Second, zone.Offset(summer))
}

func TestEmbeddedDatabase_Lookup(t *testing.T) {
	zone, err := timezone.EmbeddedDatabase{}.Lookup("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, zone.Offset(winter))
	assert.Equal(t, 2*time.Hour, zone.Offset(summer))

	_, err = timezone.EmbeddedDatabase{}.Lookup("Not/AZone")
	assert.Error(t, err)

	_, err = timezone.EmbeddedDatabase{}.Lookup("")
	assert.Error(t, err)
}

func TestSystemDatabase_Zones(t *testing.T) {
	root := zoneRoot(t)
	other := t.TempDir()

	writeFile(t, filepath.Join(root, "posix", "Test", "Fixed"), fixedTZif("IST", istOffset))
	writeFile(t, filepath.Join(root, "right", "Test", "Fixed"), fixedTZif("IST", istOffset))
	writeFile(t, filepath.Join(root, "localtime"), fixedTZif("IST", istOffset))
	writeFile(t, filepath.Join(root, "zone.tab"), []byte("# tz zone descriptions\n"))
	writeFile(t, filepath.Join(other, "Alpha"), fixedTZif("ALP", 3600))
	writeFile(t, filepath.Join(other, "Test", "Fixed"), fixedTZif("IST", istOffset))

	missing := filepath.Join(t.TempDir(), "missing")

	zones, err := timezone.NewSystemDatabase([]string{root, other, missing}, true).Zones()
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "Test/Fixed"}, zones)
}

func TestSystemDatabase_ZonesEmpty(t *testing.T) {
	zones, err := timezone.NewSystemDatabase(nil, true).Zones()
	require.NoError(t, err)

	assert.Empty(t, zones)
}

func TestSystemDatabase_UnreadableRootFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Test"), []byte("TZif"), 0o600))

	_, err := timezone.NewSystemDatabase([]string{root}, false).Lookup("Test/Fixed")
	assert.Error(t, err)
}
