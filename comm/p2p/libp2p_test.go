// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package p2p_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/network"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/libp2p/go-libp2p/core/peerstore"
	"github.com/libp2p/go-libp2p/core/protocol"
	"github.com/stretchr/testify/suite"

	"github.com/omnivault/vault-accounting/comm"
	"github.com/omnivault/vault-accounting/comm/p2p"
	"github.com/omnivault/vault-accounting/topology"
)

const numberOfTestHosts = 2

const testProtocolID = protocol.ID("/vault-accounting/coordination/1.0.0")

type CommunicationTestSuite struct {
	suite.Suite
	testHosts []host.Host
	testPeers peer.IDSlice
}

func TestRunCommunicationTestSuite(t *testing.T) {
	suite.Run(t, new(CommunicationTestSuite))
}

func (s *CommunicationTestSuite) SetupTest() {
	s.testHosts = []host.Host{}
	s.testPeers = peer.IDSlice{}

	privKeys := []crypto.PrivKey{}
	allowedPeers := []*peer.AddrInfo{}
	for range numberOfTestHosts {
		privKey, _, err := crypto.GenerateKeyPair(crypto.ECDSA, 1)
		s.Nil(err)
		peerID, err := peer.IDFromPrivateKey(privKey)
		s.Nil(err)

		privKeys = append(privKeys, privKey)
		allowedPeers = append(allowedPeers, &peer.AddrInfo{ID: peerID})
	}

	replicaTopology := topology.NewVaultTopology(allowedPeers)
	for i := range numberOfTestHosts {
		newHost, err := p2p.NewHost(
			privKeys[i],
			replicaTopology.Peers(),
			p2p.NewConnectionGate(replicaTopology),
			uint16(14010+i),
		)
		s.Nil(err)
		s.testHosts = append(s.testHosts, newHost)
		s.testPeers = append(s.testPeers, newHost.ID())
	}

	for i := range numberOfTestHosts {
		for j := range numberOfTestHosts {
			if i == j {
				continue
			}

			adrInfo, err := peer.AddrInfoFromString(fmt.Sprintf(
				"/ip4/127.0.0.1/tcp/%d/p2p/%s", 14010+j, s.testHosts[j].ID().String(),
			))
			s.Nil(err)
			s.testHosts[i].Peerstore().AddAddr(
				adrInfo.ID, adrInfo.Addrs[0], peerstore.PermanentAddrTTL,
			)
		}
	}
}

func (s *CommunicationTestSuite) TearDownTest() {
	for _, testHost := range s.testHosts {
		_ = testHost.Close()
	}
}

func (s *CommunicationTestSuite) Test_Broadcast_DeliveredToSubscribedPeer() {
	sender := p2p.NewCommunication(s.testHosts[0], testProtocolID)
	receiver := p2p.NewCommunication(s.testHosts[1], testProtocolID)

	msgChn := make(chan *comm.WrappedMessage, 1)
	subID := receiver.Subscribe(comm.OutcomeSessionID, comm.OutcomeMsg, msgChn)
	defer receiver.UnSubscribe(subID)

	err := sender.Broadcast(s.testPeers, []byte("outcome"), comm.OutcomeMsg, comm.OutcomeSessionID)
	s.Nil(err)

	select {
	case msg := <-msgChn:
		s.Equal([]byte("outcome"), msg.Payload)
		s.Equal(comm.OutcomeMsg, msg.MessageType)
		s.Equal(comm.OutcomeSessionID, msg.SessionID)
		s.Equal(s.testHosts[0].ID(), msg.From)
	case <-time.After(time.Second * 5):
		s.Fail("timed out waiting for broadcast message")
	}
}

func (s *CommunicationTestSuite) Test_Broadcast_IgnoredAfterUnsubscribe() {
	sender := p2p.NewCommunication(s.testHosts[0], testProtocolID)
	receiver := p2p.NewCommunication(s.testHosts[1], testProtocolID)

	msgChn := make(chan *comm.WrappedMessage, 1)
	subID := receiver.Subscribe(comm.OutcomeSessionID, comm.OutcomeMsg, msgChn)
	receiver.UnSubscribe(subID)

	err := sender.Broadcast(s.testPeers, []byte("outcome"), comm.OutcomeMsg, comm.OutcomeSessionID)
	s.Nil(err)

	select {
	case <-msgChn:
		s.Fail("received message on unsubscribed channel")
	case <-time.After(time.Millisecond * 500):
	}
}

func (s *CommunicationTestSuite) Test_StreamManager_ReusesStreams() {
	s.testHosts[1].SetStreamHandler(testProtocolID, func(stream network.Stream) {})

	streamManager := p2p.NewStreamManager(s.testHosts[0])

	stream1, err := streamManager.Stream(comm.OutcomeSessionID, s.testHosts[1].ID(), testProtocolID)
	s.Nil(err)
	stream2, err := streamManager.Stream(comm.OutcomeSessionID, s.testHosts[1].ID(), testProtocolID)
	s.Nil(err)

	s.Equal(stream1, stream2)

	streamManager.ReleaseStreams(comm.OutcomeSessionID)
}
