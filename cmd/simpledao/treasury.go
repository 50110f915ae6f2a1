package main

import (
	"strconv"

	"simple_dao/gov"
	"simple_dao/internal/config"

	"github.com/spf13/cobra"
)

func depositCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Credit funds into the pooled treasury (any caller)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.Deposit(caller, resolveTime(), gov.Amount(amount)); err != nil {
					return err
				}
				logger.Info("deposit credited",
					"from", caller.String(),
					"amount", amount,
					"balance", gov.AmountToInt64(engine.Balance()),
				)
				return nil
			})
		},
	}
}

func withdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <amount>",
		Short: "Move funds from the pool to the owner (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.Withdraw(caller, resolveTime(), gov.Amount(amount)); err != nil {
					return err
				}
				logger.Info("withdrawal settled",
					"amount", amount,
					"balance", gov.AmountToInt64(engine.Balance()),
				)
				return nil
			})
		},
	}
}
