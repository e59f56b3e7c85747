package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teamupapp/teamup/internal/ux"
	"github.com/teamupapp/teamup/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("short", false, "print only the version number")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	short, _ := cmd.Flags().GetBool("short")
	if short {
		fmt.Fprintln(cmd.OutOrStdout(), info.Short())
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "" && format != "text" {
		formatter, err := ux.NewFormatter(format, &ux.FormatterOptions{Writer: cmd.OutOrStdout()})
		if err != nil {
			return err
		}
		return formatter.Format(info)
	}

	fmt.Fprintln(cmd.OutOrStdout(), info.String())
	return nil
}
