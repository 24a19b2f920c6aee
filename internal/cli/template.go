package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/renderers/term"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates"},
		Short:   "Manage published form templates",
	}
	cmd.AddCommand(c.templateImportCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateShowCommand())
	cmd.AddCommand(c.templateSchemaCommand())
	cmd.AddCommand(c.templatePreviewCommand())
	return cmd
}

func (c *CLI) templateImportCommand() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Publish a form from a YAML or JSON authoring file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			form, err := definition.NewLoader().LoadFile(args[0])
			if err != nil {
				return err
			}

			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			opts := []session.Option{session.WithLogger(logger)}
			if c.newID != nil {
				opts = append(opts, session.WithIDGenerator(c.newID))
			}
			if id != "" {
				opts = append(opts, session.WithIDGenerator(func() string { return id }))
			}
			builder := session.NewBuilder(st, opts...)
			if id != "" {
				if err := builder.Edit(ctx, id); err != nil && !errors.Is(err, store.ErrTemplateNotFound) {
					return err
				}
			}
			if err := builder.Update(func(model.Form) (model.Form, error) { return form, nil }); err != nil {
				return err
			}

			tpl, err := builder.Publish(ctx)
			if err != nil {
				if publishErr, ok := validation.AsPublishError(err); ok {
					return fmt.Errorf("cannot publish %s: %s", args[0], publishErr.Reason)
				}
				return err
			}
			newUI(c.out).printSuccess("Published %q as %s (revision %d)", tpl.Title, tpl.ID, tpl.Revision)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "template id to create or overwrite")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List published templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			templates, err := st.LoadTemplates(ctx)
			if err != nil {
				return err
			}
			responses, err := st.LoadResponses(ctx)
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				newUI(c.out).println("No published templates.")
				return nil
			}

			ids := make([]string, 0, len(templates))
			for id := range templates {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tFIELDS\tRESPONSES\tREVISION")
			for _, id := range ids {
				tpl := templates[id]
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", id, tpl.Title, len(tpl.Config.Fields()), len(responses[id]), tpl.Revision)
			}
			return tw.Flush()
		},
	}
}

func (c *CLI) templateShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a template as JSON",
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
			return writeJSON(c, tpl)
		},
	}
}

func (c *CLI) templateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <id>",
		Short: "Print the OpenAPI schema of a template's submissions",
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
			payload, err := validation.Compile(tpl.Config).MarshalOpenAPI()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, string(payload))
			return err
		},
	}
}

func (c *CLI) templatePreviewCommand() *cobra.Command {
	var (
		format string
		width  int
	)
	cmd := &cobra.Command{
		Use:   "preview <id>",
		Short: "Render a template for the terminal or as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			registry, err := c.renderers(width)
			if err != nil {
				return err
			}
			renderer, err := registry.Get(format)
			if err != nil {
				return err
			}

			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			tpl, err := st.LoadTemplate(ctx, args[0])
			if err != nil {
				return err
			}
			out, err := renderer.Render(ctx, tpl.Config, render.Options{Mode: model.ViewModeCreate})
			if err != nil {
				return err
			}
			_, err = c.out.Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "term", "output format: term or html")
	cmd.Flags().IntVar(&width, "width", term.DefaultWidth, "terminal preview width")
	return cmd
}

func (c *CLI) renderers(width int) (*render.Registry, error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(term.New(term.WithWidth(width), term.WithOutput(c.out)), htmlRenderer)
}

func writeJSON(c *CLI, value any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
