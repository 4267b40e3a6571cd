package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	jwtservice "github.com/limbo/frisfocus/pkg/jwt_service"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("user", "", "user id to put in the token")
	tokenCmd.Flags().Duration("ttl", time.Hour, "token lifetime")
	tokenCmd.MarkFlagRequired("user")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for local testing",
	Long:  `Sign an HS256 token with JWT_SECRET the way the auth gateway does. Meant for development only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("user")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		uid, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		token, err := jwtservice.New(loadConfig().GetString("JWT_SECRET")).GenerateToken(uid, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
