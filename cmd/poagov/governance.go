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
	"strconv"

	"github.com/gridtokenx/poagov"
	"github.com/gridtokenx/poagov/internal/config"
	"github.com/spf13/cobra"
)

func initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the governance config, the signer becomes the authority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				if err := e.Initialize(signer); err != nil {
					return err
				}
				fmt.Println("governance config initialized")
				return nil
			})
		},
	}
}

func pauseCommand() *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Engage the emergency pause",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.EmergencyPause(signer, reason)
			})
		},
	}
	cmd.Flags().
		StringVar(&reason, "reason", "", "reason for the emergency pause")
	return cmd
}

func unpauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "Lift the emergency pause",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.EmergencyUnpause(signer)
			})
		},
	}
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show a snapshot of the governance config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				stats, err := e.Stats()
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}

func setValidationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-validation <true|false>",
		Short: "Set the certificate validation toggle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid boolean value: %s", args[0])
			}
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.UpdateConfig(signer, enabled)
			})
		},
	}
}

func setMaintenanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-maintenance <true|false>",
		Short: "Set maintenance mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid boolean value: %s", args[0])
			}
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.SetMaintenanceMode(signer, enabled)
			})
		},
	}
}

func setLimitsCommand() *cobra.Command {
	var (
		minEnergy uint64
		maxAmount uint64
		validity  int64
	)
	cmd := &cobra.Command{
		Use:   "set-limits",
		Short: "Update the issuance limits and validity period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.UpdateErcLimits(signer, minEnergy, maxAmount, validity)
			})
		},
	}
	cmd.Flags().
		Uint64Var(&minEnergy, "min", 0, "minimum energy amount (kWh)")
	cmd.Flags().
		Uint64Var(&maxAmount, "max", 0, "maximum certificate amount (kWh)")
	cmd.Flags().
		Int64Var(&validity, "validity", 0, "certificate validity period (seconds)")
	cmd.MarkFlagRequired("min")      //nolint:errcheck
	cmd.MarkFlagRequired("max")      //nolint:errcheck
	cmd.MarkFlagRequired("validity") //nolint:errcheck
	return cmd
}

func setContactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-contact <contact-info>",
		Short: "Update the authority contact info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(cfg *config.Config, e *poagov.Engine) error {
				signer, err := signerAuthority(cfg)
				if err != nil {
					return err
				}
				return e.UpdateAuthorityInfo(signer, args[0])
			})
		},
	}
}
