package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/renttrack/internal/api"
)

func TenantsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List, show and add tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.ListTenants(a.ctx(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s  %-22s  %-24s  %10s  %-8s\n", "ID", "Name", "Property", "Rent", "Status")
			for _, t := range list {
				fmt.Fprintf(out, "%-14s  %-22s  %-24s  %10.2f  %-8s\n", t.ID, t.Name, t.PropertyName, t.RentAmount, t.Status)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.client.GetTenant(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "ledger <id>",
		Short: "Show a tenant's payments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.TenantLedger(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), list)
		},
	})

	var in api.TenantInput
	var rent, deposit float64
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.RentAmount = api.FlexNumber(rent)
			in.Deposit = api.FlexNumber(deposit)
			t, err := a.client.CreateTenant(a.ctx(cmd), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
	f := add.Flags()
	f.StringVar(&in.Name, "name", "", "full name")
	f.StringVar(&in.Email, "email", "", "email address")
	f.StringVar(&in.Phone, "phone", "", "phone number")
	f.StringVar(&in.GovtID, "govt-id", "", "government id")
	f.StringVar(&in.Address, "address", "", "postal address")
	f.StringVar(&in.PropertyID, "property", "", "property id")
	f.Float64Var(&rent, "rent", 0, "monthly rent")
	f.Float64Var(&deposit, "deposit", 0, "security deposit")
	f.StringVar(&in.LeaseStart, "lease-start", "", "lease start (YYYY-MM-DD)")
	f.StringVar(&in.LeaseEnd, "lease-end", "", "lease end (YYYY-MM-DD)")
	f.StringVar(&in.Status, "status", "", "active, pending or inactive")
	cmd.AddCommand(add)

	return cmd
}

func PropertiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List, show, add and edit properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.ListProperties(a.ctx(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s  %-26s  %-14s  %10s  %-9s\n", "ID", "Title", "City", "Price", "Available")
			for _, p := range list {
				fmt.Fprintf(out, "%-12s  %-26s  %-14s  %10.2f  %-9t\n", p.ID, p.Title, p.City, p.Price, p.Available)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.GetProperty(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	})

	var in api.PropertyInput
	var price, bhk, sqft float64
	var available bool
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Price = api.FlexNumber(price)
			in.BHK = api.FlexNumber(bhk)
			in.Sqft = api.FlexNumber(sqft)
			if cmd.Flags().Changed("available") {
				in.Available = &available
			}
			p, err := a.client.CreateProperty(a.ctx(cmd), in)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	f := add.Flags()
	f.StringVar(&in.Title, "title", "", "listing title")
	f.StringVar(&in.Address, "address", "", "street address")
	f.StringVar(&in.City, "city", "", "city")
	f.Float64Var(&price, "price", 0, "monthly price")
	f.Float64Var(&bhk, "bhk", 0, "bedrooms")
	f.Float64Var(&sqft, "sqft", 0, "floor area")
	f.StringSliceVar(&in.Amenities, "amenity", nil, "amenity (repeatable)")
	f.StringSliceVar(&in.Images, "image", nil, "image URL (repeatable)")
	f.BoolVar(&available, "available", true, "open for rent")
	f.StringVar(&in.Description, "description", "", "free text")
	f.StringVar(&in.Type, "type", "", "apartment, house, villa or studio")
	cmd.AddCommand(add)

	cmd.AddCommand(propertyUpdateCmd(a))
	return cmd
}

// propertyUpdateCmd sends only the flags that were set.
func propertyUpdateCmd(a *app) *cobra.Command {
	var (
		title, address, city, description, typ string
		price, bhk, sqft                       float64
		available                              bool
		amenities, images                      []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fl := cmd.Flags()
			var patch api.PropertyPatch
			str := func(name string, v *string) *string {
				if fl.Changed(name) {
					return v
				}
				return nil
			}
			num := func(name string, v float64) *api.FlexNumber {
				if fl.Changed(name) {
					n := api.FlexNumber(v)
					return &n
				}
				return nil
			}
			patch.Title = str("title", &title)
			patch.Address = str("address", &address)
			patch.City = str("city", &city)
			patch.Description = str("description", &description)
			patch.Type = str("type", &typ)
			patch.Price = num("price", price)
			patch.BHK = num("bhk", bhk)
			patch.Sqft = num("sqft", sqft)
			if fl.Changed("available") {
				patch.Available = &available
			}
			if fl.Changed("amenity") {
				patch.Amenities = amenities
			}
			if fl.Changed("image") {
				patch.Images = images
			}
			p, err := a.client.UpdateProperty(a.ctx(cmd), args[0], patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	f := cmd.Flags()
	f.StringVar(&title, "title", "", "listing title")
	f.StringVar(&address, "address", "", "street address")
	f.StringVar(&city, "city", "", "city")
	f.Float64Var(&price, "price", 0, "monthly price")
	f.Float64Var(&bhk, "bhk", 0, "bedrooms")
	f.Float64Var(&sqft, "sqft", 0, "floor area")
	f.StringSliceVar(&amenities, "amenity", nil, "amenity (repeatable, replaces the list)")
	f.StringSliceVar(&images, "image", nil, "image URL (repeatable, replaces the list)")
	f.BoolVar(&available, "available", true, "open for rent")
	f.StringVar(&description, "description", "", "free text")
	f.StringVar(&typ, "type", "", "apartment, house, villa or studio")
	return cmd
}

func PaymentsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List and settle payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.client.ListPayments(a.ctx(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s  %-22s  %-14s  %10s  %-10s  %-8s\n", "ID", "Tenant", "Month", "Amount", "Due", "Status")
			for _, p := range list {
				fmt.Fprintf(out, "%-14s  %-22s  %-14s  %10.2f  %-10s  %-8s\n", p.ID, p.TenantName, p.Month, p.Amount, p.DueDate, p.Status)
			}
			return nil
		},
	}

	var paid api.MarkPaidInput
	mark := &cobra.Command{
		Use:   "mark-paid <id>",
		Short: "Mark a payment as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.client.MarkPaymentPaid(a.ctx(cmd), args[0], paid)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	mark.Flags().StringVar(&paid.Method, "method", "", "payment method")
	mark.Flags().StringVar(&paid.PaidDate, "date", "", "paid on (YYYY-MM-DD, default today)")
	cmd.AddCommand(mark)

	var manual api.ManualPaymentInput
	var amount float64
	record := &cobra.Command{
		Use:   "record",
		Short: "Record a payment received outside the system",
		RunE: func(cmd *cobra.Command, args []string) error {
			manual.Amount = api.FlexNumber(amount)
			p, err := a.client.RecordManualPayment(a.ctx(cmd), manual)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	rf := record.Flags()
	rf.StringVar(&manual.TenantID, "tenant", "", "tenant id")
	rf.Float64Var(&amount, "amount", 0, "amount received")
	rf.StringVar(&manual.Date, "date", "", "received on (YYYY-MM-DD, default today)")
	rf.StringVar(&manual.Method, "method", "", "payment method")
	rf.StringVar(&manual.ReceiptURL, "receipt", "", "receipt URL")
	_ = record.MarkFlagRequired("tenant")
	cmd.AddCommand(record)

	var asOf string
	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Mark due payments past their due date as overdue",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.client.SweepOverduePayments(a.ctx(cmd), asOf)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d payment(s) marked overdue\n", n)
			return nil
		},
	}
	sweep.Flags().StringVar(&asOf, "as-of", "", "cutoff date (YYYY-MM-DD, default today)")
	cmd.AddCommand(sweep)

	return cmd
}
