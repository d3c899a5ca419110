package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noctale/noctale/internal/auth"
	"github.com/noctale/noctale/internal/config"
)

var tokenBotID string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a service token",
	Long:  `Mint a signed bearer token for a bot deployment using the configured TOKEN_SECRET.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenBotID, "bot", "", "bot id to embed in the token")
	_ = tokenCmd.MarkFlagRequired("bot")
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	svc, err := auth.NewTokenService(&auth.Config{
		Secret: cfg.TokenSecret,
		Issuer: cfg.TokenIssuer,
	})
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	token, err := svc.Sign(tokenBotID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
