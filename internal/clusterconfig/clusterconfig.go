// Package clusterconfig loads the JSON file describing a cluster's replica
// addresses and quorum sizes.
package clusterconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spalhad/kvstore/internal/kverrors"
)

// Config is the on-disk shape of a cluster's configuration: the replica
// window size, the read/write quorums, and the HTTP base URL of every node
// in address order. A node's position in Addresses is its self id.
type Config struct {
	Replication      int      `json:"replication"`
	MinCorrectReads  int      `json:"min_correct_reads"`
	MinCorrectWrites int      `json:"min_correct_writes"`
	Addresses        []string `json:"addresses"`
}

// Load reads and parses a Config from path.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("clusterconfig: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("clusterconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ValidateSelfID checks that selfID names a real slot in cfg.Addresses.
func (cfg Config) ValidateSelfID(selfID int) error {
	if selfID < 0 || selfID >= len(cfg.Addresses) {
		return kverrors.SelfIdOutOfRange{SelfID: selfID, NumAddresses: len(cfg.Addresses)}
	}
	return nil
}
