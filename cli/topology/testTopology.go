// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package topology

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/omnivault/vault-accounting/topology"
)

var TopologyCLI = &cobra.Command{
	Use:   "topology",
	Short: "Topology related commands",
}

var (
	testTopologyCMD = &cobra.Command{
		Use:   "test",
		Short: "Test hosted topology",
		Long: "CLI tests that the topology document at the provided URL matches the " +
			"expected hash and parses into a valid hub-spoke registry",
		RunE: testTopology,
	}
)

var (
	url  string
	hash string
)

func init() {
	TopologyCLI.AddCommand(testTopologyCMD)

	testTopologyCMD.PersistentFlags().StringVar(&url, "url", "", "URL of the topology document")
	_ = testTopologyCMD.MarkFlagRequired("url")
	testTopologyCMD.PersistentFlags().StringVar(&hash, "hash", "", "expected hash of topology")
}

func testTopology(cmd *cobra.Command, args []string) error {
	provider := topology.NewVaultTopologyProvider(url, http.DefaultClient)
	rawTopology, err := provider.RawTopology(hash)
	if err != nil {
		return err
	}

	vaultTopology, err := topology.ProcessRawTopology(rawTopology)
	if err != nil {
		return err
	}

	fmt.Printf("Everything is fine your topology is \n")
	fmt.Printf("%+v", vaultTopology)
	return nil
}
