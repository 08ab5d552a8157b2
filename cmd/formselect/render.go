package main

import (
	"context"
	"html/template"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/formselect/internal/config"
	"github.com/vango-dev/formselect/internal/errors"
	"github.com/vango-dev/formselect/internal/publish"
	"github.com/vango-dev/formselect/pkg/selectlist"
	"github.com/vango-dev/formselect/pkg/server"
)

func renderCmd(configPath *string) *cobra.Command {
	var (
		file          string
		out           string
		idReplacement string
	)

	cmd := &cobra.Command{
		Use:   "render <dropdown|listbox>",
		Short: "Render a select element from a JSON request",
		Long: `Render a dropdown or list box from a JSON render request.

The request is read from --file, or from stdin when no file is given.
The markup is written to stdout, or published with --out to a file
path or an s3://bucket/key URL.

Examples:
  formselect render dropdown -f country.json
  echo '{"name":"q","options":[{"text":"a"}]}' | formselect render listbox
  formselect render dropdown -f country.json --out s3://fragments/country.html`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(selectlist.KindDropDown), string(selectlist.KindListBox)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := selectlist.ParseKind(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.LoadOrDefault(*configPath)
			if err != nil {
				return err
			}
			if idReplacement != "" {
				cfg.Render.IDReplacement = idReplacement
			}
			return runRender(cmd, cfg, kind, file, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Render request file (default: stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Publish destination: file path or s3://bucket/key")
	cmd.Flags().StringVar(&idReplacement, "id-replacement", "", "Replacement for invalid id characters (default from config)")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, kind selectlist.Kind, file, out string) error {
	data, err := readRequest(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}
	req, err := server.ParseRenderRequest(data)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	renderer := selectlist.NewRenderer(selectlist.RendererConfig{
		IDReplacement: cfg.Render.IDReplacement,
		Logger:        logger,
	})

	var markup template.HTML
	switch kind {
	case selectlist.KindDropDown:
		sel, err := req.DropDown()
		if err != nil {
			return err
		}
		markup, err = renderer.DropDown(sel)
		if err != nil {
			return err
		}
	case selectlist.KindListBox:
		sel, err := req.ListBox()
		if err != nil {
			return err
		}
		markup, err = renderer.ListBox(sel)
		if err != nil {
			return err
		}
	}

	if out == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), string(markup)+"\n")
		return err
	}

	dest, err := publish.ParseDestination(out)
	if err != nil {
		return err
	}
	store, err := dest.Store(publish.S3Options{
		Region:       cfg.Publish.S3.Region,
		Endpoint:     cfg.Publish.S3.Endpoint,
		UsePathStyle: cfg.Publish.S3.UsePathStyle,
	})
	if err != nil {
		return err
	}
	loc, err := store.Put(context.Background(), dest.Key, []byte(markup))
	if err != nil {
		return err
	}
	success(cmd, "Published %s", loc)
	return nil
}

// readRequest reads the request from path, or from stdin when path is
// empty or "-".
func readRequest(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.New("E140").WithDetail("stdin: " + err.Error()).Wrap(err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E140").
			WithDetail(err.Error()).
			WithSuggestion("Check the path passed to --file").
			Wrap(err)
	}
	return data, nil
}
