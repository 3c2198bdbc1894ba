// Package headergen produces the C-linkage binding header for a crate by
// driving the cbindgen tool, configured so every binding symbol lands under
// the finch::bindgen::<package> namespace chain.
package headergen

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/finch-gen/finch-frontend-api/internal/application/common/slogger"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

const (
	defaultBinary    = "cbindgen"
	defaultTimeout   = 2 * time.Minute
	headerNameSuffix = "-finch_bindgen.h"
)

// Options configures the generator invocation.
type Options struct {
	// Binary is the generator executable, looked up on PATH when not an
	// absolute path. Empty selects the default.
	Binary string
	// Timeout bounds one generator run. Zero selects the default.
	Timeout time.Duration
}

// CbindgenGenerator generates binding headers by executing the cbindgen
// binary against a crate directory.
type CbindgenGenerator struct {
	binary  string
	timeout time.Duration
}

// NewCbindgenGenerator creates a generator with the given options.
func NewCbindgenGenerator(opts Options) *CbindgenGenerator {
	binary := opts.Binary
	if binary == "" {
		binary = defaultBinary
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &CbindgenGenerator{
		binary:  binary,
		timeout: timeout,
	}
}

// GenerateHeader runs cbindgen for the crate and returns the path of the
// written header.
func (g *CbindgenGenerator) GenerateHeader(
	ctx context.Context,
	spec outbound.HeaderGenerationSpec,
) (string, error) {
	packageName, err := ResolvePackageName(spec.PackageName, spec.CrateDir)
	if err != nil {
		return "", err
	}
	underscored := UnderscoreName(packageName)

	outputDir := spec.OutputDir
	if outputDir == "" {
		outputDir = spec.CrateDir
	}
	headerPath := filepath.Join(outputDir, underscored+headerNameSuffix)

	configPath, err := g.writeConfig(underscored, packageName)
	if err != nil {
		return "", err
	}
	defer os.Remove(configPath)

	cmdCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, g.binary,
		"--config", configPath,
		"--output", headerPath,
		spec.CrateDir,
	)
	cmd.Dir = spec.CrateDir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("cbindgen failed for crate %q: %w, output: %s",
			packageName, err, string(output))
	}

	slogger.Debug(ctx, "binding header generated", slogger.Fields{
		"package":     packageName,
		"header_path": headerPath,
	})

	return headerPath, nil
}

// writeConfig writes a temporary cbindgen configuration nesting the binding
// symbols under the namespace chain the extraction walker expects.
func (g *CbindgenGenerator) writeConfig(underscored, packageName string) (string, error) {
	file, err := os.CreateTemp("", "cbindgen-*.toml")
	if err != nil {
		return "", fmt.Errorf("failed to create cbindgen config: %w", err)
	}

	config := fmt.Sprintf(`language = "C++"
namespaces = ["finch", "bindgen", %q]

[parse]
parse_deps = true
include = ["finch-gen"]

[parse.expand]
crates = [%q]
`, underscored, packageName)

	if _, err := file.WriteString(config); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to write cbindgen config: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", fmt.Errorf("failed to close cbindgen config: %w", err)
	}

	return file.Name(), nil
}
