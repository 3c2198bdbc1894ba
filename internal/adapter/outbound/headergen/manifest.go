package headergen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	domainerrors "github.com/finch-gen/finch-frontend-api/internal/domain/errors/domain"
)

// cargoPackageNameEnv is set by cargo when it invokes build scripts, so a
// generator running inside a build already knows its package name.
const cargoPackageNameEnv = "CARGO_PKG_NAME"

// ResolvePackageName resolves the crate's package name. An explicitly
// configured name wins, then the cargo environment, then the crate manifest.
func ResolvePackageName(configured, crateDir string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if name := os.Getenv(cargoPackageNameEnv); name != "" {
		return name, nil
	}

	return packageNameFromManifest(crateDir)
}

// packageNameFromManifest reads the package name out of the crate's
// Cargo.toml.
func packageNameFromManifest(crateDir string) (string, error) {
	manifest := viper.New()
	manifest.SetConfigFile(filepath.Join(crateDir, "Cargo.toml"))
	manifest.SetConfigType("toml")

	if err := manifest.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read crate manifest: %w", err)
	}

	name := manifest.GetString("package.name")
	if name == "" {
		return "", fmt.Errorf("crate manifest has no package name: %w", domainerrors.ErrPackageNameEmpty)
	}

	return name, nil
}

// UnderscoreName converts a crate name to the identifier form used inside
// the generated header's namespaces and file name.
func UnderscoreName(packageName string) string {
	return strings.ReplaceAll(packageName, "-", "_")
}
