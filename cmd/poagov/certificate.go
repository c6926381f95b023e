// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gridtokenx/poagov"
	"github.com/gridtokenx/poagov/internal/config"
	"github.com/spf13/cobra"
)

func issueCommand() *cobra.Command {
	var (
		energyAmount    uint64
		renewableSource string
		validationData  string
	)
	cmd := &cobra.Command{
		Use:   "issue <certificate-id>",
		Short: "Issue a new certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.IssueCertificate(signer, poagov.IssueCertificateParams{
					CertificateId:   args[0],
					EnergyAmount:    energyAmount,
					RenewableSource: renewableSource,
					ValidationData:  validationData,
				})
			})
		},
	}
	cmd.Flags().
		Uint64Var(&energyAmount, "energy", 0, "energy amount (kWh)")
	cmd.Flags().
		StringVar(&renewableSource, "source", "", "renewable source name")
	cmd.Flags().
		StringVar(&validationData, "data", "", "raw validation payload")
	cmd.MarkFlagRequired("energy") //nolint:errcheck
	return cmd
}

func validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <certificate-id>",
		Short: "Validate a certificate for trading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.ValidateForTrading(signer, args[0])
			})
		},
	}
}

func revokeCommand() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "revoke <certificate-id>",
		Short: "Revoke a certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.RevokeCertificate(signer, args[0], reason)
			})
		},
	}
	cmd.Flags().
		StringVar(&reason, "reason", "", "reason for the revocation")
	return cmd
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <certificate-id>",
		Short: "Show a certificate record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				cert, err := e.Certificate(args[0])
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(cert, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all certificates in issuance order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				certs, err := e.Certificates()
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
				fmt.Fprintln(
					w,
					"ID\tENERGY (kWh)\tSOURCE\tSTATUS\tVALIDATED",
				)
				for _, cert := range certs {
					fmt.Fprintf(
						w,
						"%s\t%d\t%s\t%s\t%t\n",
						cert.CertificateId,
						cert.EnergyAmount,
						cert.RenewableSource,
						cert.EffectiveStatus,
						cert.ValidatedForTrading,
					)
				}
				return w.Flush()
			})
		},
	}
}
