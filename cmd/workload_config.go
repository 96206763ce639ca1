package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seeksim/seeksim/sim"
)

// Define struct for YAML
type WorkloadConfig struct {
	Algorithm           string            `yaml:"algorithm"`
	InitialHeadPosition *int              `yaml:"initial_head_position"`
	DiskSize            *int              `yaml:"disk_size"`
	Direction           string            `yaml:"direction"`
	Requests            []WorkloadRequest `yaml:"requests"`
}

type WorkloadRequest struct {
	ID          int   `yaml:"id"`
	Track       int   `yaml:"track"`
	ArrivalTime int64 `yaml:"arrival_time"`
}

// LoadWorkload reads and parses a YAML workload file.
func LoadWorkload(path string) (*WorkloadConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload file: %w", err)
	}
	var cfg WorkloadConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse workload file: %w", err)
	}
	if len(cfg.Requests) == 0 {
		return nil, fmt.Errorf("workload file %s contains no requests", path)
	}
	return &cfg, nil
}

// SimRequests converts the workload's request entries to engine requests.
func (cfg *WorkloadConfig) SimRequests() []sim.Request {
	reqs := make([]sim.Request, len(cfg.Requests))
	for i, r := range cfg.Requests {
		reqs[i] = sim.NewRequest(r.ID, r.Track, r.ArrivalTime)
	}
	return reqs
}
