package main

import (
	"simple_dao/gov"
	"simple_dao/internal/config"

	"github.com/spf13/cobra"
)

func initCommand() *cobra.Command {
	var quorum uint64
	var votingDuration int64
	var executionDelay int64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "One-time setup: the caller becomes owner and first member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}

			params := gov.Params{
				MinimumQuorum:  cfg.MinimumQuorum,
				VotingDuration: cfg.VotingDuration,
				ExecutionDelay: cfg.ExecutionDelay,
			}
			if cmd.Flags().Changed("quorum") {
				params.MinimumQuorum = quorum
			}
			if cmd.Flags().Changed("voting-duration") {
				params.VotingDuration = votingDuration
			}
			if cmd.Flags().Changed("execution-delay") {
				params.ExecutionDelay = executionDelay
			}

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.Construct(caller, resolveTime(), params); err != nil {
					return err
				}
				logger.Info("governance initialized",
					"owner", caller.String(),
					"minimum_quorum", params.MinimumQuorum,
					"voting_duration", params.VotingDuration,
					"execution_delay", params.ExecutionDelay,
				)
				return nil
			})
		},
	}

	cmd.Flags().Uint64Var(&quorum, "quorum", 0, "absolute vote count required before execution")
	cmd.Flags().Int64Var(&votingDuration, "voting-duration", 0, "voting window in seconds")
	cmd.Flags().Int64Var(&executionDelay, "execution-delay", 0, "waiting period after the deadline in seconds")
	return cmd
}
