package main

import (
	"encoding/json"
	"fmt"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		Long: `Sign an access token with JWT_PRIVATE_KEY the way the gateway would, for
local testing against the API. Refused when APP_ENV=production.`,
		RunE: runToken,
	}

	cmd.Flags().String("user", "", "user id to embed (required)")
	cmd.Flags().String("email", "", "email claim")
	cmd.Flags().String("role", "user", "role claim")
	_ = cmd.MarkFlagRequired("user")
	_ = viper.BindPFlag("token.user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("token.email", cmd.Flags().Lookup("email"))
	_ = viper.BindPFlag("token.role", cmd.Flags().Lookup("role"))

	return cmd
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.IsProduction() {
		return fmt.Errorf("token issuing is disabled in production")
	}

	response, err := issueToken(services.NewTokenService(&cfg.JWT),
		viper.GetString("token.user"),
		viper.GetString("token.email"),
		viper.GetString("token.role"),
	)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}

func issueToken(tokenService services.TokenServiceInterface, rawUserID, email, role string) (*dto.TokenResponse, error) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	token, expiresAt, err := tokenService.GenerateAccessToken(userID, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
