// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package topology

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/rs/zerolog/log"
)

// Spoke is one satellite vault whose value feeds a hub aggregate.
type Spoke struct {
	Eid   uint32
	Vault common.Address
}

type vaultKey struct {
	chainID uint64
	vault   common.Address
}

// VaultTopology is the process wide hub-spoke registry. It is read on every
// fan-out value read and mutated only by infrequent administrative updates,
// each hub entry replaced atomically.
type VaultTopology struct {
	mu sync.RWMutex

	peers []*peer.AddrInfo

	eids        map[uint64]uint32
	vaults      map[vaultKey]bool
	hubToSpokes map[vaultKey][]Spoke
}

func NewVaultTopology(peers []*peer.AddrInfo) *VaultTopology {
	return &VaultTopology{
		peers:       peers,
		eids:        make(map[uint64]uint32),
		vaults:      make(map[vaultKey]bool),
		hubToSpokes: make(map[vaultKey][]Spoke),
	}
}

func (t *VaultTopology) Peers() []*peer.AddrInfo {
	return t.peers
}

func (t *VaultTopology) IsAllowedPeer(peer peer.ID) bool {
	for _, p := range t.peers {
		if p.ID == peer {
			return true
		}
	}

	return false
}

// EndpointID returns the transport endpoint id for a chain, 0 when the chain
// is unsupported.
func (t *VaultTopology) EndpointID(chainID uint64) uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.eids[chainID]
}

func (t *VaultTopology) SetChainEndpoint(chainID uint64, eid uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.eids[chainID] = eid
}

// ChainID reverse-resolves a transport endpoint id to its chain
func (t *VaultTopology) ChainID(eid uint32) (uint64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for chainID, chainEid := range t.eids {
		if chainEid == eid {
			return chainID, true
		}
	}

	return 0, false
}

// Spokes returns every spoke vault registered for the hub vault
func (t *VaultTopology) Spokes(hubChainID uint64, hubVault common.Address) []Spoke {
	t.mu.RLock()
	defer t.mu.RUnlock()

	spokes := t.hubToSpokes[vaultKey{hubChainID, hubVault}]
	out := make([]Spoke, len(spokes))
	copy(out, spokes)
	return out
}

// SetSpokes replaces the spoke set of a hub vault atomically and registers
// the hub as a cross-chain vault
func (t *VaultTopology) SetSpokes(hubChainID uint64, hubVault common.Address, spokes []Spoke) {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := vaultKey{hubChainID, hubVault}
	t.hubToSpokes[k] = spokes
	t.vaults[k] = true
}

func (t *VaultTopology) RegisterVault(chainID uint64, vault common.Address) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.vaults[vaultKey{chainID, vault}] = true
}

func (t *VaultTopology) IsVault(chainID uint64, vault common.Address) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.vaults[vaultKey{chainID, vault}]
}

// IsCrossChainVault reports whether the vault has spokes registered and
// therefore needs remote valuation reads before fulfilling requests
func (t *VaultTopology) IsCrossChainVault(chainID uint64, vault common.Address) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.hubToSpokes[vaultKey{chainID, vault}]) > 0
}

type RawTopology struct {
	Peers  []RawPeer  `mapstructure:"Peers" json:"peers"`
	Chains []RawChain `mapstructure:"Chains" json:"chains"`
	Hubs   []RawHub   `mapstructure:"Hubs" json:"hubs"`
}

type RawPeer struct {
	PeerAddress string `mapstructure:"PeerAddress" json:"peerAddress"`
}

type RawChain struct {
	ChainId uint64 `mapstructure:"ChainId" json:"chainId"`
	Eid     uint32 `mapstructure:"Eid" json:"eid"`
}

type RawHub struct {
	ChainId uint64     `mapstructure:"ChainId" json:"chainId"`
	Vault   string     `mapstructure:"Vault" json:"vault"`
	Spokes  []RawSpoke `mapstructure:"Spokes" json:"spokes"`
}

type RawSpoke struct {
	Eid   uint32 `mapstructure:"Eid" json:"eid"`
	Vault string `mapstructure:"Vault" json:"vault"`
}

type VaultTopologyProvider interface {
	// RawTopology fetches the latest topology document and validates that
	// the version matches the expected hash.
	RawTopology(hash string) (*RawTopology, error)
}

func NewVaultTopologyProvider(url string, client *http.Client) VaultTopologyProvider {
	return &TopologyProvider{
		url:    url,
		client: client,
	}
}

type TopologyProvider struct {
	url    string
	client *http.Client
}

func (t *TopologyProvider) RawTopology(hash string) (*RawTopology, error) {
	log.Info().Msgf("Reading topology from %s", t.url)

	resp, err := t.client.Get(t.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("topology fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	body = []byte(strings.TrimSuffix(string(body), "\n"))
	h := sha256.New()
	h.Write(body)
	eh := hex.EncodeToString(h.Sum(nil))
	if hash != "" && eh != hash {
		return nil, fmt.Errorf("topology hash %s not matching expected hash %s", eh, hash)
	}

	rawTopology := &RawTopology{}
	err = json.Unmarshal(body, rawTopology)
	if err != nil {
		return nil, err
	}

	return rawTopology, nil
}

func ProcessRawTopology(rawTopology *RawTopology) (*VaultTopology, error) {
	var peers []*peer.AddrInfo
	for _, p := range rawTopology.Peers {
		addrInfo, err := peer.AddrInfoFromString(p.PeerAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid peer address %s: %w", p.PeerAddress, err)
		}
		peers = append(peers, addrInfo)
	}

	topology := NewVaultTopology(peers)
	for _, c := range rawTopology.Chains {
		if c.Eid == 0 {
			return nil, fmt.Errorf("invalid endpoint id for chain %d", c.ChainId)
		}
		topology.SetChainEndpoint(c.ChainId, c.Eid)
	}

	for _, h := range rawTopology.Hubs {
		if !common.IsHexAddress(h.Vault) {
			return nil, fmt.Errorf("invalid hub vault address %s", h.Vault)
		}

		spokes := make([]Spoke, 0, len(h.Spokes))
		for _, s := range h.Spokes {
			if s.Eid == 0 {
				return nil, fmt.Errorf("invalid spoke endpoint id for hub %s", h.Vault)
			}
			if !common.IsHexAddress(s.Vault) {
				return nil, fmt.Errorf("invalid spoke vault address %s", s.Vault)
			}
			spokes = append(spokes, Spoke{Eid: s.Eid, Vault: common.HexToAddress(s.Vault)})
		}
		topology.SetSpokes(h.ChainId, common.HexToAddress(h.Vault), spokes)
	}

	return topology, nil
}
