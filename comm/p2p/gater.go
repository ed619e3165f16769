// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p

import (
	"github.com/libp2p/go-libp2p/core/control"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	ma "github.com/multiformats/go-multiaddr"
)

// AllowedPeers reports whether a peer is part of the current replica set
type AllowedPeers interface {
	IsAllowedPeer(p peer.ID) bool
}

// ConnectionGate refuses connections to and from peers outside the replica
// topology
type ConnectionGate struct {
	allowedPeers AllowedPeers
}

func NewConnectionGate(allowedPeers AllowedPeers) *ConnectionGate {
	return &ConnectionGate{
		allowedPeers: allowedPeers,
	}
}

func (cg *ConnectionGate) InterceptPeerDial(p peer.ID) bool {
	return cg.allowedPeers.IsAllowedPeer(p)
}

func (cg *ConnectionGate) InterceptAddrDial(p peer.ID, addr ma.Multiaddr) bool {
	return cg.allowedPeers.IsAllowedPeer(p)
}

func (cg *ConnectionGate) InterceptAccept(multiaddrs network.ConnMultiaddrs) bool {
	return true
}

func (cg *ConnectionGate) InterceptSecured(direction network.Direction, p peer.ID, multiaddrs network.ConnMultiaddrs) bool {
	return cg.allowedPeers.IsAllowedPeer(p)
}

func (cg *ConnectionGate) InterceptUpgraded(conn network.Conn) (bool, control.DisconnectReason) {
	return true, 0
}
