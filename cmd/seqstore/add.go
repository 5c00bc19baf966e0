package main

import (
	"fmt"
	"time"

	"github.com/cqkv/seqstore/model"
	"github.com/spf13/cobra"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a record",
	}

	var item struct {
		Content string
		Price   string
	}
	cmdItem := &cobra.Command{
		Use:   "item",
		Short: "Append an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := model.ParseDecimal(item.Price)
			if err != nil {
				return err
			}
			it := &model.Item{
				Content:   item.Content,
				CreatedAt: model.TicksFromTime(time.Now()),
				Price:     price,
			}

			dir, err := flags.openDir(cmd)
			if err != nil {
				return err
			}
			defer dir.Close()
			if err = dir.Items.Append(it); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "item %d\n", it.ID)
			return nil
		},
	}
	cmdItem.Flags().StringVar(&item.Content, "content", "", "Item content")
	cmdItem.Flags().StringVar(&item.Price, "price", "0", "Item price")

	var order struct {
		ItemID uint16
		Total  float32
	}
	cmdOrder := &cobra.Command{
		Use:   "order",
		Short: "Append an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := &model.Order{ItemID: order.ItemID, TotalPrice: order.Total}

			dir, err := flags.openDir(cmd)
			if err != nil {
				return err
			}
			defer dir.Close()
			if err = dir.Orders.Append(o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %d\n", o.ID)
			return nil
		},
	}
	cmdOrder.Flags().Uint16Var(&order.ItemID, "item", 0, "Referenced item identifier")
	cmdOrder.Flags().Float32Var(&order.Total, "total", 0, "Order total")

	var user struct {
		Username string
		Password string
		Admin    bool
	}
	cmdUser := &cobra.Command{
		Use:   "user",
		Short: "Append a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &model.User{Username: user.Username, Password: user.Password}
			if user.Admin {
				u.Role = model.RoleAdministrator
			}

			dir, err := flags.openDir(cmd)
			if err != nil {
				return err
			}
			defer dir.Close()
			if err = dir.Users.Append(u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d\n", u.ID)
			return nil
		},
	}
	cmdUser.Flags().StringVar(&user.Username, "username", "", "Account name")
	cmdUser.Flags().StringVar(&user.Password, "password", "", "Account password")
	cmdUser.Flags().BoolVar(&user.Admin, "admin", false, "Grant the administrator role")

	cmd.AddCommand(cmdItem, cmdOrder, cmdUser)
	return cmd
}
