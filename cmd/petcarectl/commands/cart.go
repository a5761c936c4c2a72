package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

type cartView struct {
	Items []struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
		Selected bool   `json:"selected"`
		Subtotal int64  `json:"subtotal"`
	} `json:"items"`
	TotalItems    int   `json:"total_items"`
	TotalPrice    int64 `json:"total_price"`
	SelectedTotal int64 `json:"selected_total"`
}

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Operaciones sobre el carrito",
	}
	cmd.AddCommand(cartListCmd(), cartAddCmd(), cartQtyCmd())
	return cmd
}

func cartListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Muestra el carrito con totales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out cartView
			if err := client.Get(cmd.Context(), "/cart", &out); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// cart add <id> [<name> <price>] [--category] [--image]
func cartAddCmd() *cobra.Command {
	var category, image string
	cmd := &cobra.Command{
		Use:   "add <id> [<name> <price>]",
		Short: `Agrega un producto del catálogo por id, o uno libre con nombre y precio (ej "Rp 125.000")`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts <id> or <id> <name> <price>, received %d arg(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			body := map[string]any{"id": id}
			if len(args) == 3 {
				body["name"], body["price"] = args[1], args[2]
				body["category"], body["image"] = category, image
			}

			var out cartView
			if err := client.Post(cmd.Context(), "/cart/items", body, &out); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "categoría del producto libre")
	cmd.Flags().StringVar(&image, "image", "", "URL de imagen del producto libre")
	return cmd
}

// cart qty <id> <quantity>
func cartQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <id> <quantity>",
		Short: "Cambia la cantidad de una línea (<= 0 la quita)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
			var out cartView
			if err := client.Patch(cmd.Context(), fmt.Sprintf("/cart/items/%d", id), map[string]int{"quantity": qty}, &out); err != nil {
				return err
			}
			printCart(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func printCart(w io.Writer, c cartView) {
	for _, it := range c.Items {
		mark := " "
		if it.Selected {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %d\t%s\t%d x %d = %d\n", mark, it.ID, it.Name, it.Quantity, it.Price, it.Subtotal)
	}
	fmt.Fprintf(w, "items=%d total=%d selected=%d\n", c.TotalItems, c.TotalPrice, c.SelectedTotal)
}
