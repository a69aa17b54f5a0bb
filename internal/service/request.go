package service

import (
	"fmt"
	"os"

	"github.com/dotX12/netkit/internal/domain"

	"gopkg.in/yaml.v2"
)

// LoadRequest reads a configuration request from a YAML file
func LoadRequest(path string) (domain.ConfigurationRequest, error) {
	var req domain.ConfigurationRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read request file: %w", err)
	}

	if err := DecodeRequest(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}
	return req, nil
}

// DecodeRequest decodes YAML into req, rejecting unknown keys
func DecodeRequest(data []byte, req *domain.ConfigurationRequest) error {
	return yaml.UnmarshalStrict(data, req)
}
