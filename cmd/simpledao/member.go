package main

import (
	"simple_dao/gov"
	"simple_dao/internal/config"

	"github.com/spf13/cobra"
)

func memberCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Owner-only membership administration",
	}
	cmd.AddCommand(memberAddCommand())
	cmd.AddCommand(memberRemoveCommand())
	return cmd
}

func memberAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <address>",
		Short: "Admit an address into the membership set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			addr := gov.AddressFromString(args[0])

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.AddMember(caller, resolveTime(), addr); err != nil {
					return err
				}
				logger.Info("member added",
					"address", addr.String(),
					"member_count", engine.MemberCount(),
				)
				return nil
			})
		},
	}
}

func memberRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <address>",
		Short: "Remove an address from the membership set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			addr := gov.AddressFromString(args[0])

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.RemoveMember(caller, resolveTime(), addr); err != nil {
					return err
				}
				logger.Info("member removed",
					"address", addr.String(),
					"member_count", engine.MemberCount(),
				)
				return nil
			})
		},
	}
}
