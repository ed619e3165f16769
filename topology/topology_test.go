// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package topology_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/omnivault/vault-accounting/topology"
)

type TopologyTestSuite struct {
	suite.Suite

	raw *topology.RawTopology
}

func TestRunTopologyTestSuite(t *testing.T) {
	suite.Run(t, new(TopologyTestSuite))
}

func (s *TopologyTestSuite) SetupTest() {
	s.raw = &topology.RawTopology{
		Peers: []topology.RawPeer{
			{PeerAddress: "/dns4/relayer2/tcp/9001/p2p/QmeTuMtdpPB7zKDgmobEwSvxodrf5aFVSmBXX3SQJVjJaT"},
		},
		Chains: []topology.RawChain{
			{ChainId: 1, Eid: 30101},
			{ChainId: 8453, Eid: 30184},
		},
		Hubs: []topology.RawHub{
			{
				ChainId: 1,
				Vault:   "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
				Spokes: []topology.RawSpoke{
					{Eid: 30184, Vault: "0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657"},
					{Eid: 30110, Vault: "0xde526bA5d1ad94cC59D7A79d99A59F607d31A657"},
				},
			},
		},
	}
}

func (s *TopologyTestSuite) Test_ProcessRawTopology_Valid() {
	t, err := topology.ProcessRawTopology(s.raw)

	s.Nil(err)
	s.Equal(uint32(30101), t.EndpointID(1))
	s.Equal(uint32(30184), t.EndpointID(8453))
	s.Equal(uint32(0), t.EndpointID(42161))

	hub := common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	s.True(t.IsVault(1, hub))
	s.True(t.IsCrossChainVault(1, hub))
	s.Len(t.Spokes(1, hub), 2)

	s.False(t.IsVault(1, common.HexToAddress("0x0000000000000000000000000000000000000001")))
	s.False(t.IsCrossChainVault(8453, hub))
}

func (s *TopologyTestSuite) Test_ProcessRawTopology_InvalidPeerAddress() {
	s.raw.Peers[0].PeerAddress = "invalid"

	_, err := topology.ProcessRawTopology(s.raw)
	s.NotNil(err)
}

func (s *TopologyTestSuite) Test_ProcessRawTopology_InvalidEid() {
	s.raw.Chains[0].Eid = 0

	_, err := topology.ProcessRawTopology(s.raw)
	s.NotNil(err)
}

func (s *TopologyTestSuite) Test_ProcessRawTopology_InvalidSpokeVault() {
	s.raw.Hubs[0].Spokes[0].Vault = "not-an-address"

	_, err := topology.ProcessRawTopology(s.raw)
	s.NotNil(err)
}

func (s *TopologyTestSuite) Test_SetSpokes_ReplacesAtomically() {
	t, err := topology.ProcessRawTopology(s.raw)
	s.Nil(err)

	hub := common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	t.SetSpokes(1, hub, []topology.Spoke{
		{Eid: 30110, Vault: common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657")},
	})

	s.Len(t.Spokes(1, hub), 1)
	s.Equal(uint32(30110), t.Spokes(1, hub)[0].Eid)
}
