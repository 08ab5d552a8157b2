package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vango-dev/formselect/pkg/tag"
)

func sanitizeIDCmd() *cobra.Command {
	var replacement string

	cmd := &cobra.Command{
		Use:   "sanitize-id <name>",
		Short: "Print the element id generated for a field name",
		Long: `Print the id a select would get for the given field name.

Characters that are not valid in ids are replaced. A name that does not
start with an ASCII letter yields an empty id, printed as an empty line.

Examples:
  formselect sanitize-id user.address[0]
  formselect sanitize-id "first name" --replacement=-`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := tag.SanitizeID(args[0], replacement)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&replacement, "replacement", "r", tag.DefaultIDReplacement, "Replacement for invalid characters")

	return cmd
}
