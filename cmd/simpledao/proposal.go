package main

import (
	"strconv"

	"simple_dao/gov"
	"simple_dao/internal/config"

	"github.com/spf13/cobra"
)

func proposeCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "propose <value> <recipient>",
		Short: "Create a transfer proposal (members only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			recipient := gov.AddressFromString(args[1])

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				id, err := engine.CreateProposal(caller, resolveTime(), description, gov.Amount(value), recipient)
				if err != nil {
					return err
				}
				details := engine.ProposalDetails(id)
				logger.Info("proposal created",
					"id", id,
					"value", details.Value,
					"recipient", details.Recipient,
					"voting_deadline", details.VotingDeadline,
				)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "human-readable proposal text")
	return cmd
}

func voteCommand() *cobra.Command {
	var against bool

	cmd := &cobra.Command{
		Use:   "vote <proposal-id>",
		Short: "Cast the caller's single permanent vote on an open proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.VoteProposal(caller, resolveTime(), id, !against); err != nil {
					return err
				}
				details := engine.ProposalDetails(id)
				logger.Info("vote recorded",
					"id", id,
					"approve", !against,
					"votes_for", details.VotesFor,
					"votes_against", details.VotesAgainst,
				)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&against, "against", false, "vote against instead of for")
	return cmd
}

func executeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <proposal-id>",
		Short: "Execute an approved proposal once its time locks expire",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commonRun()
			cfg := config.GetConfig()
			caller, err := resolveCaller(cfg)
			if err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withEngine(cfg, logger, func(engine *gov.Engine) error {
				if err := engine.ExecuteProposal(caller, resolveTime(), id); err != nil {
					return err
				}
				logger.Info("proposal executed",
					"id", id,
					"balance", gov.AmountToInt64(engine.Balance()),
				)
				return nil
			})
		},
	}
}
