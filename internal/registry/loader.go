package registry

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/signer"
	"gopkg.in/yaml.v3"
)

// SignatureSuffix is appended to the mirror list path to locate its detached signature
const SignatureSuffix = ".asc"

// mirrorList is the on-disk layout of an external mirror list
type mirrorList struct {
	Repositories []models.RepositoryEntry `yaml:"repositories"`
}

// LoadFile reads a YAML mirror list. When verifier is non-nil the detached
// signature next to the file must verify before anything is parsed.
func LoadFile(path string, verifier signer.Verifier) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.StationError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to read mirror list %s: %w", path, err),
		}
	}

	if verifier != nil {
		sig, err := os.ReadFile(path + SignatureSuffix)
		if err != nil {
			return nil, &models.StationError{
				Type: models.ErrSignature,
				Err:  fmt.Errorf("failed to read signature for %s: %w", path, err),
			}
		}
		if err := verifier.VerifyDetached(data, sig); err != nil {
			return nil, &models.StationError{
				Type: models.ErrSignature,
				Err:  fmt.Errorf("mirror list %s: %w", path, err),
			}
		}
	}

	return Parse(data)
}

// Parse builds a registry from a YAML mirror list document
func Parse(data []byte) (*Registry, error) {
	var list mirrorList

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&list); err != nil {
		return nil, &models.StationError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to parse mirror list: %w", err),
		}
	}

	return New(list.Repositories...)
}
