// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/spf13/cobra"

	"github.com/omnivault/vault-accounting/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the vault accounting replica",
		Long:  "Starts the replica with the provided configuration and joins the coordination network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
