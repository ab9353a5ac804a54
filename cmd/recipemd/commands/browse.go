package commands

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/recipemd/recipemd/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Lists previously saved recipes and prints a chosen one.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(cfg.OutputDir)
		entries, err := st.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No saved recipes in %s\n", cfg.OutputDir)
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", "Recipe"})
		for i, entry := range entries {
			t.AppendRow(table.Row{i + 1, entry.Title})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		choice, ok := promptChoice(cmd, len(entries))
		if !ok {
			return nil
		}

		content, err := st.Read(entries[choice-1].Path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}

// promptChoice asks for a recipe number until one is valid or the user
// quits with 'q'.
func promptChoice(cmd *cobra.Command, max int) (int, bool) {
	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), "Enter a number to view a recipe, or 'q' to quit: ")
		line, err := reader.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			return 0, false
		}
		if strings.EqualFold(input, "q") {
			return 0, false
		}
		choice, convErr := strconv.Atoi(input)
		if convErr == nil && choice >= 1 && choice <= max {
			return choice, true
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Input error. Try again.")
		if err != nil {
			return 0, false
		}
	}
}
