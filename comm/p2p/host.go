// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p

import (
	"fmt"

	"github.com/libp2p/go-libp2p"
	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/peerstore"
	"github.com/rs/zerolog/log"
)

// NewHost creates a gated libp2p host listening on the provided port and
// pre-populates the peerstore with the replica peers from the topology.
func NewHost(privKey crypto.PrivKey, peers []*peer.AddrInfo, cg *ConnectionGate, port uint16) (host.Host, error) {
	if privKey == nil {
		return nil, fmt.Errorf("unable to create host: private key not defined")
	}

	h, err := libp2p.New(
		libp2p.ListenAddrStrings(fmt.Sprintf("/ip4/0.0.0.0/tcp/%d", port)),
		libp2p.Identity(privKey),
		libp2p.ConnectionGater(cg),
	)
	if err != nil {
		return nil, err
	}

	for _, p := range peers {
		h.Peerstore().AddAddrs(p.ID, p.Addrs, peerstore.PermanentAddrTTL)
	}

	log.Info().Str("peerID", h.ID().String()).Msgf("Started libp2p host on port %d", port)
	return h, nil
}
