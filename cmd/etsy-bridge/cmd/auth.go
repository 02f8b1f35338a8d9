package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/etsy-bridge/internal/etsy"
)

func authURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-url",
		Short: "Print an Etsy authorization URL and its PKCE verifier",
		Long: "Builds a connect URL from the local config without contacting a\n" +
			"running bridge. The printed verifier is needed to exchange the code\n" +
			"by hand; set etsy.code_verifier to pin it.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := []etsy.AuthOption{
				etsy.WithAuthURL(cfg.Etsy.AuthURL),
				etsy.WithTokenURL(cfg.Etsy.TokenURL),
				etsy.WithScopes(cfg.Etsy.Scopes),
			}
			if cfg.Etsy.CodeVerifier != "" {
				opts = append(opts, etsy.WithFixedVerifier(cfg.Etsy.CodeVerifier))
			}

			flow := etsy.NewAuthFlow(cfg.Etsy.APIKey, cfg.Etsy.CallbackURL, etsy.NewSessionStore(), opts...)
			a, err := flow.Begin()
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]string{
					"url":            a.URL,
					"state":          a.State,
					"code_verifier":  a.PKCE.Verifier,
					"code_challenge": a.PKCE.Challenge,
				})
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("URL:\t%s\n", a.URL)
			tw.writef("State:\t%s\n", a.State)
			tw.writef("Verifier:\t%s\n", a.PKCE.Verifier)
			return tw.finish()
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-status",
		Short: "Show the running bridge's Etsy session",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := newClient().AuthStatus(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(st)
			}

			if !st.Authenticated {
				fmt.Println("Not authenticated. Visit /auth on the bridge to connect Etsy.")
				return nil
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Authenticated:\t%v\n", st.Authenticated)
			tw.writef("Expired:\t%v\n", st.Expired)
			tw.writef("Refreshable:\t%v\n", st.Refreshable)
			tw.writef("Obtained:\t%s\n", formatTime(st.ObtainedAt))
			tw.writef("Expires:\t%s\n", formatTime(st.ExpiresAt))
			return tw.finish()
		},
	}
}
