// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p

import (
	"context"
	"sync"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/rs/zerolog/log"
)

// StreamManager caches one outbound stream per peer and session and opens
// a new one on first use
type StreamManager struct {
	mu       sync.Mutex
	sessions map[string]map[peer.ID]network.Stream
	host     host.Host
}

func NewStreamManager(host host.Host) *StreamManager {
	return &StreamManager{
		sessions: make(map[string]map[peer.ID]network.Stream),
		host:     host,
	}
}

// Stream returns the cached stream to a peer for a session, dialing the
// peer if none is open yet
func (sm *StreamManager) Stream(sessionID string, peerID peer.ID, protocolID protocol.ID) (network.Stream, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	stream, ok := sm.sessions[sessionID][peerID]
	if ok {
		return stream, nil
	}

	stream, err := sm.host.NewStream(context.TODO(), peerID, protocolID)
	if err != nil {
		return nil, err
	}

	sm.addStream(sessionID, peerID, stream)
	return stream, nil
}

// AddStream saves and maps provided stream to sessionID
func (sm *StreamManager) AddStream(sessionID string, peerID peer.ID, stream network.Stream) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.addStream(sessionID, peerID, stream)
}

func (sm *StreamManager) addStream(sessionID string, peerID peer.ID, stream network.Stream) {
	streams, ok := sm.sessions[sessionID]
	if !ok {
		streams = make(map[peer.ID]network.Stream)
		sm.sessions[sessionID] = streams
	}

	if _, ok := streams[peerID]; ok {
		return
	}

	streams[peerID] = stream
}

// ReleaseStreams closes every stream mapped to the provided sessionID and
// drops the references
func (sm *StreamManager) ReleaseStreams(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for peer, stream := range sm.sessions[sessionID] {
		if stream.Conn() != nil {
			_ = stream.Conn().Close()
		}

		err := stream.Close()
		if err != nil {
			log.Debug().Msgf("Cannot close stream to peer %s, err: %s", peer.String(), err.Error())
		}
	}

	delete(sm.sessions, sessionID)
}
