// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package peer

import (
	"fmt"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/spf13/cobra"
)

var PeerCLI = &cobra.Command{
	Use:   "peer",
	Short: "Peer related commands",
}

var genKeyCMD = &cobra.Command{
	Use:   "gen-key",
	Short: "Generate a libp2p identity",
	Long:  "Generates a libp2p private key and the derived peer ID for use in the replica configuration and topology",
	RunE:  genKey,
}

func init() {
	PeerCLI.AddCommand(genKeyCMD)
}

func genKey(cmd *cobra.Command, args []string) error {
	priv, _, err := crypto.GenerateKeyPair(crypto.ECDSA, 1)
	if err != nil {
		return err
	}

	privBytes, err := crypto.MarshalPrivateKey(priv)
	if err != nil {
		return err
	}

	peerID, err := peer.IDFromPrivateKey(priv)
	if err != nil {
		return err
	}

	fmt.Printf("LibP2P peer identity: %s\n", peerID.String())
	fmt.Printf("LibP2P private key: %s\n", crypto.ConfigEncodeKey(privBytes))
	return nil
}
