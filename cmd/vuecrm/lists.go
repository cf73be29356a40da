package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/vuecrm/internal/app"
	"github.com/five82/vuecrm/internal/crm"
	"github.com/five82/vuecrm/internal/query"
)

type listFlags struct {
	query    string
	category string
	page     int
}

func newContactsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Work with contacts",
	}

	var f listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List a page of contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := crm.ParseContactStatus(f.category)
			if err != nil {
				return err
			}
			return c.withServices(cmd, func(out io.Writer, svc app.Services) error {
				filtered := query.FilterContacts(svc.Store.Contacts(), f.query, status)
				pg := query.Paginate(filtered, svc.Config.ContactsPageSize, f.page)
				return writeContacts(out, pg)
			})
		},
	}
	list.Flags().StringVarP(&f.query, "query", "q", "", "match name, email or company")
	list.Flags().StringVar(&f.category, "status", string(crm.StatusAll), "all, lead, qualified, customer or churned")
	list.Flags().IntVarP(&f.page, "page", "p", 1, "page number")

	cmd.AddCommand(list)
	return cmd
}

func newCreatorsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creators",
		Short: "Work with creators",
	}

	var f listFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List a page of creators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tier, err := crm.ParseCreatorTier(f.category)
			if err != nil {
				return err
			}
			return c.withServices(cmd, func(out io.Writer, svc app.Services) error {
				filtered := query.FilterCreators(svc.Store.Creators(), f.query, tier)
				pg := query.Paginate(filtered, svc.Config.CreatorsPageSize, f.page)
				return writeCreators(out, pg)
			})
		},
	}
	list.Flags().StringVarP(&f.query, "query", "q", "", "match name or @handle")
	list.Flags().StringVar(&f.category, "tier", string(crm.TierAll), "all, standard, premium or vip")
	list.Flags().IntVarP(&f.page, "page", "p", 1, "page number")

	cmd.AddCommand(list)
	return cmd
}

func writeContacts(out io.Writer, pg query.Page[crm.Contact]) error {
	if pg.Total == 0 {
		_, err := fmt.Fprintln(out, "No contacts match your search or filter.")
		return err
	}
	rows := make([][]string, 0, len(pg.Items))
	for _, c := range pg.Items {
		rows = append(rows, []string{c.ID, c.Name, c.Email, c.Company, c.Status.Label(), crm.FormatDay(c.CreatedAt)})
	}
	return writeTable(out, []string{"ID", "NAME", "EMAIL", "COMPANY", "STATUS", "CREATED"}, rows, pg.Number, pg.TotalPages)
}

func writeCreators(out io.Writer, pg query.Page[crm.Creator]) error {
	if pg.Total == 0 {
		_, err := fmt.Fprintln(out, "No creators match your search or filter.")
		return err
	}
	rows := make([][]string, 0, len(pg.Items))
	for _, c := range pg.Items {
		rows = append(rows, []string{c.ID, c.Name, c.DisplayHandle(), c.Tier.Label(), crm.FormatSubscribers(c.Subscribers), crm.FormatDay(c.JoinedAt)})
	}
	return writeTable(out, []string{"ID", "NAME", "HANDLE", "TIER", "SUBSCRIBERS", "JOINED"}, rows, pg.Number, pg.TotalPages)
}

func writeTable(out io.Writer, headers []string, rows [][]string, page, pages int) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})
	_, err := fmt.Fprintf(out, "%s\npage %d/%d\n", t.Render(), page, pages)
	return err
}
