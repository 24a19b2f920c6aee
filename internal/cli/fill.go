package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/fill"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func (c *CLI) fillCommand() *cobra.Command {
	var (
		responseID string
		mode       string
		confirm    bool
	)
	cmd := &cobra.Command{
		Use:   "fill <template-id>",
		Short: "Answer a published form in the terminal",
		Long: `Prompts for every field of the template in document order and stores the
answers as a response. With --response the stored answers are shown
(--mode view) or edited in place (--mode edit).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			viewMode, err := model.ParseViewMode(mode)
			if err != nil {
				return err
			}
			if viewMode == model.ViewModeCreate && responseID != "" {
				viewMode = model.ViewModeEdit
			}
			if viewMode != model.ViewModeCreate && responseID == "" {
				return fmt.Errorf("--mode %s needs --response", viewMode)
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
			responder := session.NewResponder(st, opts...)
			tpl, rules, err := responder.Ruleset(ctx, args[0])
			if err != nil {
				return err
			}

			renderOpts := render.Options{Mode: viewMode}
			if responseID != "" {
				resp, err := st.LoadResponse(ctx, tpl.ID, responseID)
				if err != nil {
					return err
				}
				renderOpts.Values = resp.Data
			}

			driver := c.driver
			if driver == nil {
				driver = fill.NewSurveyDriver(c.out)
			}
			values, err := fill.New(driver, fill.WithConfirm(confirm)).Fill(ctx, tpl.Config, rules, renderOpts)
			if err != nil {
				return err
			}
			if viewMode == model.ViewModeView {
				return nil
			}

			saved, err := responder.Submit(ctx, tpl.ID, responseID, values)
			if err != nil {
				if submission, ok := validation.AsSubmissionError(err); ok {
					return fmt.Errorf("response rejected: %s", submission.Error())
				}
				return err
			}
			newUI(c.out).printSuccess("Saved response %s", saved.ResponseID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&responseID, "response", "r", "", "stored response to view or edit")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "create, edit or view (default create, or edit with --response)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "ask before saving")
	return cmd
}
