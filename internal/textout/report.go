// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textout

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-extract/pkg/types"
)

// WriteReport writes result as a YAML document to path.
func WriteReport(path string, result types.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return writeFile(path, data)
}
