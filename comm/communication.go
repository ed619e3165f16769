// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package comm

import (
	"fmt"

	"github.com/libp2p/go-libp2p/core/peer"
)

// SubscriptionID identifies a single subscription on a session and message
// type pair
type SubscriptionID string

func NewSubscriptionID(sessionID string, msgType MessageType, serial uint64) SubscriptionID {
	return SubscriptionID(fmt.Sprintf("%s-%d-%d", sessionID, msgType, serial))
}

// WrappedMessage is the frame every peer-to-peer message travels in
type WrappedMessage struct {
	MessageType MessageType `json:"messageType"`
	SessionID   string      `json:"sessionID"`
	Payload     []byte      `json:"payload"`
	From        peer.ID     `json:"-"`
}

// Communication sends and receives messages between replica peers
type Communication interface {
	// Broadcast sends a message to provided peers
	Broadcast(peers peer.IDSlice, msg []byte, msgType MessageType, sessionID string) error
	// Subscribe subscribes provided channel to a specific message type for a provided session
	// Returns a SubscriptionID that is used for unsubscribing
	Subscribe(sessionID string, msgType MessageType, channel chan *WrappedMessage) SubscriptionID
	// UnSubscribe unsubscribes a subscription defined by its SubscriptionID
	UnSubscribe(subID SubscriptionID)
}
