// ABOUTME: Version constants
// ABOUTME: Product identification written into manifests and logs
package version

const (
	Product      = "soundgen"
	Manufacturer = "BNI Lottery"
)

// Version is overridden at build time with
// -ldflags "-X github.com/bni-lottery/soundgen/internal/version.Version=..."
var Version = "0.3.0"

// String returns product and version, e.g. "soundgen/0.3.0"
func String() string {
	return Product + "/" + Version
}
