package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/treeinstall/pkg/config"
	"github.com/arthur-debert/treeinstall/pkg/errors"
	"github.com/arthur-debert/treeinstall/pkg/logging"
)

// DefaultPath is where the configuration is written when no path is given
const DefaultPath = "treeinstall.toml"

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Write saves the configuration instead of only returning it
	Write bool

	// Path is the file to write; empty means DefaultPath
	Path string

	// Force overwrites an existing file
	Force bool
}

// GenConfigResult holds the generated configuration
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig renders the built-in configuration and optionally writes it
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	cfg, err := config.Default()
	if err != nil {
		return nil, err
	}
	content, err := config.GenerateConfigContent(cfg)
	if err != nil {
		return nil, err
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := opts.Path
	if targetPath == "" {
		targetPath = DefaultPath
	}

	if _, err := os.Stat(targetPath); err == nil && !opts.Force {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if dir := filepath.Dir(targetPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
		}
	}
	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
