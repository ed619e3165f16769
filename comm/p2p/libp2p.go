// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p

import (
	"bufio"
	"encoding/json"

	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/comm"
)

// Libp2pCommunication implements comm.Communication over persistent libp2p
// streams. Messages are newline delimited JSON frames, one stream per peer
// and session.
type Libp2pCommunication struct {
	h             host.Host
	protocolID    protocol.ID
	streamManager *StreamManager
	subscribers   *sessionSubscriptionManager
	logger        zerolog.Logger
}

func NewCommunication(h host.Host, protocolID protocol.ID) *Libp2pCommunication {
	c := &Libp2pCommunication{
		h:             h,
		protocolID:    protocolID,
		streamManager: NewStreamManager(h),
		subscribers:   newSessionSubscriptionManager(),
		logger:        log.With().Str("peer", h.ID().String()).Logger(),
	}

	c.h.SetStreamHandler(c.protocolID, c.streamHandler)
	return c
}

// Broadcast sends a message to all provided peers, skipping itself
func (c *Libp2pCommunication) Broadcast(
	peers peer.IDSlice, msg []byte, msgType comm.MessageType, sessionID string,
) error {
	wMsg := comm.WrappedMessage{
		MessageType: msgType,
		SessionID:   sessionID,
		Payload:     msg,
	}
	marshaledMsg, err := json.Marshal(wMsg)
	if err != nil {
		return err
	}
	marshaledMsg = append(marshaledMsg, '\n')

	for _, p := range peers {
		if p == c.h.ID() {
			continue
		}

		err := c.sendMessage(p, sessionID, marshaledMsg)
		if err != nil {
			c.logger.Warn().Str("sessionID", sessionID).Msgf(
				"Failed sending %s message to peer %s: %s", msgType, p.String(), err,
			)
		}
	}

	return nil
}

func (c *Libp2pCommunication) Subscribe(
	sessionID string, msgType comm.MessageType, channel chan *comm.WrappedMessage,
) comm.SubscriptionID {
	subID := c.subscribers.subscribe(sessionID, msgType, channel)
	c.logger.Trace().Str("sessionID", sessionID).Msgf("Subscribed to %s messages", msgType)
	return subID
}

func (c *Libp2pCommunication) UnSubscribe(subID comm.SubscriptionID) {
	c.subscribers.unSubscribe(subID)
}

func (c *Libp2pCommunication) sendMessage(to peer.ID, sessionID string, msg []byte) error {
	stream, err := c.streamManager.Stream(sessionID, to, c.protocolID)
	if err != nil {
		return err
	}

	_, err = stream.Write(msg)
	if err != nil {
		c.streamManager.ReleaseStreams(sessionID)
		return err
	}

	return nil
}

func (c *Libp2pCommunication) streamHandler(stream network.Stream) {
	remote := stream.Conn().RemotePeer()
	r := bufio.NewReader(stream)
	for {
		line, err := r.ReadBytes('\n')
		if err != nil {
			_ = stream.Close()
			return
		}

		var wMsg comm.WrappedMessage
		err = json.Unmarshal(line, &wMsg)
		if err != nil {
			c.logger.Warn().Msgf("Failed unmarshaling message from peer %s: %s", remote.String(), err)
			continue
		}
		wMsg.From = remote

		for _, channel := range c.subscribers.channels(wMsg.SessionID, wMsg.MessageType) {
			channel <- &wMsg
		}
	}
}
