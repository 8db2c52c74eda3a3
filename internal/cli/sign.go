package cli

import (
	"fmt"
	"os"

	"github.com/ghostbsd/software-properties-station/internal/models"
	"github.com/ghostbsd/software-properties-station/internal/registry"
	"github.com/ghostbsd/software-properties-station/internal/signer"
	"github.com/ghostbsd/software-properties-station/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewSignReposCmd creates the sign-repos command
func NewSignReposCmd() *cobra.Command {
	var keyPath, passphrase, pubkeyOut string

	cmd := &cobra.Command{
		Use:   "sign-repos <mirrors.yaml>",
		Short: "Sign a mirror list for use with --repos-keyring",
		Long: `Checks that a YAML mirror list parses, then writes an armored
detached OpenPGP signature next to it (<file>.asc).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyPath == "" {
				return &models.StationError{
					Type: models.ErrInvalidConfig,
					Err:  fmt.Errorf("gpg-key is required"),
				}
			}
			return signMirrorList(cmd, args[0], keyPath, passphrase, pubkeyOut)
		},
	}

	cmd.Flags().StringVarP(&keyPath, "gpg-key", "k", "", "Path to GPG private key")
	cmd.Flags().StringVarP(&passphrase, "gpg-passphrase", "p", "", "GPG key passphrase")
	cmd.Flags().StringVar(&pubkeyOut, "export-pubkey", "", "Also write the armored public key to this path")

	return cmd
}

func signMirrorList(cmd *cobra.Command, path, keyPath, passphrase, pubkeyOut string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &models.StationError{Type: models.ErrFileOp, Err: err}
	}

	reg, err := registry.Parse(data)
	if err != nil {
		return err
	}

	gpgSigner, err := signer.NewGPGSigner(keyPath, passphrase)
	if err != nil {
		return &models.StationError{
			Type: models.ErrSignature,
			Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
		}
	}

	sigPath, err := publishSignature(gpgSigner, path, data, pubkeyOut)
	if err != nil {
		return err
	}
	logrus.Infof("Signed mirror list with %d repositories", reg.Len())

	fmt.Fprintf(cmd.OutOrStdout(), "Signature written to %s\n", sigPath)
	return nil
}

// publishSignature writes <path>.asc and, if pubkeyOut is set, the armored public key
func publishSignature(s signer.Signer, path string, data []byte, pubkeyOut string) (string, error) {
	sig, err := s.SignDetached(data)
	if err != nil {
		return "", &models.StationError{Type: models.ErrSignature, Err: err}
	}

	sigPath := path + registry.SignatureSuffix
	if err := utils.WriteFileAtomic(sigPath, sig, 0644); err != nil {
		return "", &models.StationError{Type: models.ErrFileOp, Err: err}
	}

	if pubkeyOut != "" {
		pub, err := s.GetPublicKey()
		if err != nil {
			return "", &models.StationError{Type: models.ErrSignature, Err: err}
		}
		if err := utils.WriteFileAtomic(pubkeyOut, pub, 0644); err != nil {
			return "", &models.StationError{Type: models.ErrFileOp, Err: err}
		}
	}

	return sigPath, nil
}
