package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/form"
	"github.com/alimikegami/point-of-sales/product-admin/internal/infrastructure/imagefile"
	"github.com/alimikegami/point-of-sales/product-admin/internal/tui"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "productadmin",
		Short:         "Add products to the store through the admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "product API base URL (overrides PRODUCT_API_BASE_URL)")

	root.AddCommand(newCreateCommand(a), newGenerateCommand(a), newFormCommand(a))
	return root
}

func (a *app) notifier() form.Notifier {
	return form.NotifierFunc(func(n form.Notification) {
		if n.Level == form.LevelSuccess {
			fmt.Fprintln(a.out, n.Message)
			return
		}
		fmt.Fprintln(a.errOut, n.Message)
	})
}

func navigator() form.Navigator {
	return form.NavigatorFunc(func(route string) {
		log.Debug().Str("route", route).Msg("Navigate")
	})
}

func newCreateCommand(a *app) *cobra.Command {
	var draft domain.DraftProduct
	var imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and submit one product with its image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.start(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.stop()

			f := form.New(svc, a.notifier(), navigator())
			for _, field := range domain.ErrorFields {
				if field == domain.FieldImage {
					continue
				}
				if err := f.SetField(field, draft.Value(field)); err != nil {
					return err
				}
			}
			f.SetAvailable(draft.ProductAvailable)

			if imagePath != "" {
				image, err := imagefile.Load(imagePath)
				if err != nil {
					return err
				}
				f.SelectImage(image)
			}

			err = f.Submit(cmd.Context())

			var validationErr *errs.ValidationError
			if errors.Is(err, errs.ErrInvalidForm) || errors.As(err, &validationErr) {
				a.printFieldErrors(f.Snapshot().Errors)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&draft.Name, "name", "", "product name")
	flags.StringVar(&draft.Brand, "brand", "", "brand")
	flags.StringVar(&draft.Description, "description", "", "description")
	flags.StringVar(&draft.Price, "price", "", "price, e.g. 19.99")
	flags.StringVar(&draft.Category, "category", "", "one of "+categoryList())
	flags.StringVar(&draft.StockQuantity, "stock", "", "stock quantity")
	flags.StringVar(&draft.ReleaseDate, "release-date", "", "release date, e.g. 2024-05-01")
	flags.BoolVar(&draft.ProductAvailable, "available", false, "mark the product as available")
	flags.StringVar(&imagePath, "image", "", "path to a JPEG or PNG image")

	return cmd
}

func newGenerateCommand(a *app) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Ask the API to generate product details from a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.start(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.stop()

			if prompt == "" {
				prompt = strings.Join(args, " ")
			}

			f := form.New(svc, a.notifier(), navigator())
			f.OpenGenerator()
			f.SetPrompt(prompt)

			generated, err := f.Generate(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(generated)
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "", "generation prompt (instead of positional words)")
	return cmd
}

func newFormCommand(a *app) *cobra.Command {
	var opts tui.Options

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in the product form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.start(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.stop()

			result, err := tui.Run(cmd.Context(), svc, opts)
			if err != nil {
				return err
			}
			if result.Canceled {
				return nil
			}

			if n := result.Notification; n != nil {
				a.notifier().Notify(*n)
			}
			a.printFieldErrors(result.Errors)
			if result.Generated != nil {
				if err := a.printJSON(result.Generated); err != nil {
					return err
				}
			}
			return result.Err
		},
	}

	cmd.Flags().BoolVar(&opts.FillFromGenerated, "fill-from-generated", false, "copy generated details into the form instead of leaving it")
	return cmd
}

func categoryList() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
