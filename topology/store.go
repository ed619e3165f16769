// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package topology

import (
	"encoding/json"
	"os"
)

// TopologyStore persists the last known raw topology so replicas can start
// without the shared document being reachable.
type TopologyStore struct {
	path string
}

func NewTopologyStore(path string) *TopologyStore {
	return &TopologyStore{path: path}
}

func (s *TopologyStore) Topology() (*RawTopology, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	rawTopology := &RawTopology{}
	err = json.Unmarshal(data, rawTopology)
	if err != nil {
		return nil, err
	}

	return rawTopology, nil
}

func (s *TopologyStore) StoreTopology(rawTopology *RawTopology) error {
	data, err := json.Marshal(rawTopology)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0600)
}
