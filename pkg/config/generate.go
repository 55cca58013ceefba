package config

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/treeinstall/pkg/errors"
)

const generatedHeader = `# treeinstall configuration
#
# Each [[specs]] entry selects files from source_root with MANIFEST.in style
# directives, rewrites their paths and copies them below dest_root/dest_dir.
# $name and ${name} are resolved from [vars] first, then the environment.

`

// GenerateConfigContent renders cfg as a TOML configuration file
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
