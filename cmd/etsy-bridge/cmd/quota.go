package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the bridge's daily Etsy API usage",
		RunE: func(_ *cobra.Command, _ []string) error {
			q, err := newClient().Quota(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(q)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Used:\t%d / %d\n", q.DailyUsed, q.DailyLimit)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets:\t%s\n", formatTime(q.ResetAt))
			return tw.finish()
		},
	}
}

func shippingProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shipping-profiles SHOP_ID",
		Short: "List a shop's shipping profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			arg := strings.TrimLeft(args[0], "0")
			if arg == "" || strings.Trim(arg, "0123456789") != "" {
				return fmt.Errorf("invalid shop ID %q", args[0])
			}
			shopID, err := cast.ToInt64E(arg)
			if err != nil || shopID <= 0 {
				return fmt.Errorf("invalid shop ID %q", args[0])
			}

			raw, err := newClient().ShippingProfiles(context.Background(), shopID)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(raw)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("ID\tTITLE\tORIGIN\n")
			gjson.GetBytes(raw, "results").ForEach(func(_, p gjson.Result) bool {
				tw.writef("%d\t%s\t%s\n",
					p.Get("shipping_profile_id").Int(),
					p.Get("title").String(),
					p.Get("origin_country_iso").String(),
				)
				return true
			})
			return tw.finish()
		},
	}
}
