package defaults

import (
	"testing"
	"time"

	"github.com/NVIDIA/version-bypass/pkg/version"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"ManifestFetchTimeout", ManifestFetchTimeout, 5 * time.Second, 30 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHTTPTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= ManifestFetchTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than ManifestFetchTimeout (%v)",
			HTTPConnectTimeout, ManifestFetchTimeout)
	}

	if HTTPTLSHandshakeTimeout >= ManifestFetchTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than ManifestFetchTimeout (%v)",
			HTTPTLSHandshakeTimeout, ManifestFetchTimeout)
	}

	if HTTPResponseHeaderTimeout > ManifestFetchTimeout {
		t.Errorf("HTTPResponseHeaderTimeout (%v) should not exceed ManifestFetchTimeout (%v)",
			HTTPResponseHeaderTimeout, ManifestFetchTimeout)
	}
}

func TestVersionConstantsParse(t *testing.T) {
	for _, v := range []string{FloorVersion, FallbackVersion, MissingVersion} {
		if _, err := version.Parse(v); err != nil {
			t.Errorf("%q should be a valid version: %v", v, err)
		}
	}
}

func TestFallbackNotBelowFloor(t *testing.T) {
	// A fallback below the floor would be rewritten on every run.
	cmp, err := version.Compare(FallbackVersion, FloorVersion)
	if err != nil {
		t.Fatal(err)
	}
	if cmp < 0 {
		t.Errorf("FallbackVersion %s is below FloorVersion %s", FallbackVersion, FloorVersion)
	}
}

func TestBackupTimeLayout(t *testing.T) {
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC).Format(BackupTimeLayout)
	if ts != "20250304050607" {
		t.Errorf("BackupTimeLayout produced %q", ts)
	}
}
