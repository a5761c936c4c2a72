package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"petcare-marketplace/internal/platform/httpclient"
)

type order struct {
	ID              string `json:"id"`
	OrderNumber     string `json:"order_number"`
	Status          string `json:"status"`
	Total           int64  `json:"total"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
	Items           []struct {
		ProductID int64  `json:"product_id"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
	} `json:"items"`
}

// checkout <address> <city> <payment-method>
func checkoutCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "checkout <address> <city> <payment-method>",
		Short: "Compra las líneas seleccionadas (credit-card|bank-transfer|e-wallet|cod)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out order
			err := client.Post(cmd.Context(), "/checkout", map[string]string{
				"address":        args[0],
				"city":           args[1],
				"payment_method": args[2],
			}, &out)
			switch {
			case httpclient.IsStatus(err, http.StatusUnauthorized):
				return fmt.Errorf("login required")
			case httpclient.IsStatus(err, http.StatusConflict):
				return fmt.Errorf("no selected items in cart")
			case err != nil:
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s total=%d (%s)\n", out.OrderNumber, out.Total, out.Status)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "imprime el pedido completo en JSON")
	return cmd
}

func ordersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Historial de pedidos (más reciente primero)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []order
			if err := client.Get(cmd.Context(), "/me/orders", &out); err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}
			for _, o := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d items\ttotal=%d\t%s\n", o.OrderNumber, o.Status, len(o.Items), o.Total, o.PaymentMethod)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "salida JSON")
	return cmd
}
