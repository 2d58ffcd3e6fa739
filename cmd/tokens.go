package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"digitalmindset/config"
	tokenRepo "digitalmindset/database/repository/token"
	"digitalmindset/models"
	"digitalmindset/services/token"
	"digitalmindset/utils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage access tokens without the admin panel",
}

// tokenImportFile is the YAML layout accepted by "tokens import".
type tokenImportFile struct {
	Tokens []struct {
		Token  string `yaml:"token"`
		Active *bool  `yaml:"active"`
	} `yaml:"tokens"`
}

func init() {
	tokensCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List tokens",
			Args:  cobra.NoArgs,
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				return printTokens(svc.List(ctx))
			}),
		},
		&cobra.Command{
			Use:   "add TOKEN",
			Short: "Create an active token",
			Args:  cobra.ExactArgs(1),
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				list, err := svc.Create(ctx, args[0])
				if err != nil {
					return err
				}
				return printTokens(list)
			}),
		},
		&cobra.Command{
			Use:   "activate TOKEN",
			Short: "Mark a token active",
			Args:  cobra.ExactArgs(1),
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				_, err := svc.SetActive(ctx, args[0], true)
				return err
			}),
		},
		&cobra.Command{
			Use:   "deactivate TOKEN",
			Short: "Mark a token inactive; its device binding is kept",
			Args:  cobra.ExactArgs(1),
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				_, err := svc.SetActive(ctx, args[0], false)
				return err
			}),
		},
		&cobra.Command{
			Use:   "remove TOKEN",
			Short: "Delete a token",
			Args:  cobra.ExactArgs(1),
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				_, err := svc.Remove(ctx, args[0])
				return err
			}),
		},
		&cobra.Command{
			Use:   "import FILE",
			Short: "Create tokens listed in a YAML file, skipping existing ones",
			Args:  cobra.ExactArgs(1),
			RunE: withTokens(func(ctx context.Context, svc token.TokenService, args []string) error {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				created, err := importTokens(ctx, svc, data)
				fmt.Printf("imported %d token(s)\n", created)
				return err
			}),
		},
	)
}

func withTokens(run func(ctx context.Context, svc token.TokenService, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openStore(config.AppConfig)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		defer s.Close(ctx)

		logger := utils.GetLogger()
		svc := token.NewTokenService(tokenRepo.NewTokenRepo(s, logger), logger)
		return run(ctx, svc, args)
	}
}

// importTokens creates every listed token that does not exist yet and
// applies an explicit active flag.
func importTokens(ctx context.Context, svc token.TokenService, data []byte) (int, error) {
	var file tokenImportFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse token file: %w", err)
	}
	created := 0
	for _, entry := range file.Tokens {
		if entry.Token == "" {
			continue
		}
		if _, err := svc.Create(ctx, entry.Token); err != nil {
			if utils.KindOf(err) != utils.KindStateConflict {
				return created, err
			}
		} else {
			created++
		}
		if entry.Active != nil && !*entry.Active {
			if _, err := svc.SetActive(ctx, entry.Token, false); err != nil {
				return created, err
			}
		}
	}
	return created, nil
}

func printTokens(tokens []models.AccessToken) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tACTIVE\tMASTER\tDEVICE\tLAST USED")
	for _, t := range tokens {
		lastUsed := "-"
		if !t.LastUsed.IsZero() {
			lastUsed = t.LastUsed.Format("2006-01-02 15:04")
		}
		device := t.UsedByDevice
		if device == "" {
			device = "-"
		}
		fmt.Fprintf(w, "%s\t%t\t%t\t%s\t%s\n", t.Token, t.Active, models.IsMaster(t.Token), device, lastUsed)
	}
	return w.Flush()
}
