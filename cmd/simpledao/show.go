package main

import (
	"fmt"
	"strconv"

	"simple_dao/gov"
	"simple_dao/internal/config"

	"github.com/CosmWasm/tinyjson"
	"github.com/spf13/cobra"
)

func showCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Read-only queries against the governance state",
	}
	cmd.AddCommand(showProposalCommand())
	cmd.AddCommand(showMemberCommand())
	cmd.AddCommand(showInfoCommand())
	return cmd
}

// printJSON renders a query projection on stdout.
func printJSON(v tinyjson.Marshaler) error {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func showProposalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "proposal <proposal-id>",
		Short: "Print a proposal record; unknown ids print a zero-valued record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}
			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				return printJSON(engine.ProposalDetails(id))
			})
		},
	}
}

func showMemberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "member <address>",
		Short: "Print membership status for an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				return printJSON(engine.MemberDetails(gov.AddressFromString(args[0])))
			})
		},
	}
}

func showInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print owner, parameters, counts and treasury balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				return printJSON(engine.Info())
			})
		},
	}
}
