package settings

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

// ProtocolVersion is the version of the serialized settings.
const ProtocolVersion = 1

// ErrUnsupportedVersion is returned when serialized settings are newer than ProtocolVersion.
var ErrUnsupportedVersion = errors.New("unsupported settings version")

// A Snapshot is serialized settings together with their version.
type Snapshot struct {
	Version     int                  `yaml:"version"`
	Application *ApplicationSettings `yaml:"application"`
}

// Marshal serializes s with the current version.
func Marshal(s *ApplicationSettings) ([]byte, error) {
	return yaml.Marshal(&Snapshot{
		Version:     ProtocolVersion,
		Application: s,
	})
}

// Unmarshal deserializes settings written by Marshal.
// A document without a version is read as the current version, and
// missing settings get the default values.
func Unmarshal(b []byte) (*ApplicationSettings, error) {
	var sn Snapshot
	if err := yaml.Unmarshal(b, &sn); err != nil {
		return nil, err
	}
	if sn.Version > ProtocolVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, sn.Version)
	}
	if sn.Application == nil {
		return NewApplicationSettings(), nil
	}
	return sn.Application, nil
}
