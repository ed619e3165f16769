// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/omnivault/vault-accounting/comm"
)

// sessionSubscriptionManager maps subscription channels by session ID and
// message type
type sessionSubscriptionManager struct {
	lock          sync.RWMutex
	serial        uint64
	subscriptions map[string]map[comm.SubscriptionID]chan *comm.WrappedMessage
}

func newSessionSubscriptionManager() *sessionSubscriptionManager {
	return &sessionSubscriptionManager{
		subscriptions: make(map[string]map[comm.SubscriptionID]chan *comm.WrappedMessage),
	}
}

func subscriptionKey(sessionID string, msgType comm.MessageType) string {
	return sessionID + "-" + msgType.String()
}

func (m *sessionSubscriptionManager) subscribe(
	sessionID string, msgType comm.MessageType, channel chan *comm.WrappedMessage,
) comm.SubscriptionID {
	m.lock.Lock()
	defer m.lock.Unlock()

	key := subscriptionKey(sessionID, msgType)
	subID := comm.NewSubscriptionID(key, msgType, atomic.AddUint64(&m.serial, 1))

	subs, ok := m.subscriptions[key]
	if !ok {
		subs = make(map[comm.SubscriptionID]chan *comm.WrappedMessage)
		m.subscriptions[key] = subs
	}
	subs[subID] = channel

	return subID
}

func (m *sessionSubscriptionManager) unSubscribe(subID comm.SubscriptionID) {
	m.lock.Lock()
	defer m.lock.Unlock()

	for key, subs := range m.subscriptions {
		if !strings.HasPrefix(string(subID), key) {
			continue
		}

		delete(subs, subID)
		if len(subs) == 0 {
			delete(m.subscriptions, key)
		}
	}
}

func (m *sessionSubscriptionManager) channels(
	sessionID string, msgType comm.MessageType,
) []chan *comm.WrappedMessage {
	m.lock.RLock()
	defer m.lock.RUnlock()

	subs := m.subscriptions[subscriptionKey(sessionID, msgType)]
	channels := make([]chan *comm.WrappedMessage, 0, len(subs))
	for _, channel := range subs {
		channels = append(channels, channel)
	}

	return channels
}
