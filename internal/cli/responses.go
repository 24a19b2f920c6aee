package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func (c *CLI) responsesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "responses",
		Aliases: []string{"response"},
		Short:   "Inspect stored responses",
	}
	cmd.AddCommand(c.responsesListCommand())
	cmd.AddCommand(c.responsesShowCommand())
	cmd.AddCommand(c.responsesDeleteCommand())
	return cmd
}

func (c *CLI) responsesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <template-id>",
		Short: "List the responses of a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			tpl, err := st.LoadTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			all, err := st.LoadResponses(ctx)
			if err != nil {
				return err
			}

			u := newUI(c.out)
			u.printTitle(tpl.Title)
			responses := all[tpl.ID]
			if len(responses) == 0 {
				u.printDetail("No responses yet.")
				return nil
			}
			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRESPONDENT\tSUBMITTED\tUPDATED")
			for _, resp := range responses {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					model.ShortID(resp.ResponseID, 6),
					model.RespondentName(tpl.Config, resp),
					formatTime(resp.CreatedAt),
					formatTime(resp.UpdatedAt))
			}
			return tw.Flush()
		},
	}
}

func (c *CLI) responsesShowCommand() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "show <template-id> <response-id>",
		Short: "Print a response as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			resp, err := st.LoadResponse(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			if pretty {
				return writeJSON(c, resp.Pretty)
			}
			return writeJSON(c, resp)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print answers keyed by field label")
	return cmd
}

func (c *CLI) responsesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <template-id> <response-id>",
		Short: "Delete a response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteResponse(ctx, args[0], args[1]); err != nil {
				return err
			}
			loggerFromContext(ctx).Info("response deleted", "template", args[0], "response", args[1])
			newUI(c.out).printSuccess("Deleted response %s", args[1])
			return nil
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
