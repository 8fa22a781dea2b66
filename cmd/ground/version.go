package main

import (
	"fmt"

	"github.com/sandevgo/groundchat/internal/core"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the GroundChat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", core.AppName, core.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
