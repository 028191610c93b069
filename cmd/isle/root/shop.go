package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the island shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Island Shop"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Seeds: %d %s", svc.Profile().Coins, ui.IconSeed)))
			fmt.Fprintln(out, "")

			for _, item := range engine.ShopCatalog {
				tag := ui.Gold.Render(fmt.Sprintf("%d seeds", item.Cost))
				if svc.OwnsItem(item.ID) {
					tag = ui.Good.Render("owned")
				}
				fmt.Fprintf(out, "- %s %s %s\n", item.Name, ui.Muted.Render("("+item.Type+", "+item.ID+")"), tag)
			}
			return nil
		},
	}

	cmd.AddCommand(newShopBuyCmd())
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item with seeds",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			item, err := svc.PurchaseItem(ctx, args[0])
			if err != nil {
				return err
			}
			if item == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no such item"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconShop+" Bought"),
				item.Name,
				ui.Muted.Render(fmt.Sprintf("(seeds left: %d)", svc.Profile().Coins)))
			return nil
		},
	}
}
