package cli

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soomtochukwu/XLMate/internal/services/keyauth"
)

// newKeygenCmd generates an API key and the keys-file entry for it. The
// plaintext key is printed once and never stored.
func newKeygenCmd() *cobra.Command {
	var identity string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an API key and its keys-file entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := make([]byte, 24)
			if _, err := rand.Read(raw); err != nil {
				return err
			}
			secret := base64.RawURLEncoding.EncodeToString(raw)

			hash, err := keyauth.HashKey(secret)
			if err != nil {
				return err
			}

			fmt.Printf("credential: %s:%s\n", identity, secret)
			fmt.Println()
			fmt.Println("keys-file entry:")
			fmt.Printf("  - identity: %s\n", identity)
			fmt.Printf("    key_hash: %q\n", hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&identity, "identity", "", "Identity the key belongs to")
	_ = cmd.MarkFlagRequired("identity")

	return cmd
}
