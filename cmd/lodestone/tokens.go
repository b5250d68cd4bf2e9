package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lodestone-studio/lodestone/internal/config"
	"github.com/lodestone-studio/lodestone/internal/tokens"
	"github.com/lodestone-studio/lodestone/pkg/diff"
)

func newTokensCmd(v *viper.Viper) *cobra.Command {
	var (
		output  string
		against string
	)

	cmd := &cobra.Command{
		Use:   "tokens [key...]",
		Short: "Print the design tokens or resolve token keys",
		Long: `Without arguments, print every table of the configured token set.
With arguments, print "key=value" for each key path such as spacing.md and
fail when any key is missing. Use --token-set and --token-file to pick the set,
and --diff to compare it with a built-in set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			set, err := cfg.Theme.Tokens()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if against != "" {
				return diffTokens(out, set, against)
			}
			if len(args) > 0 {
				return resolveTokens(out, set, args)
			}
			switch output {
			case "yaml":
				return printTokensYAML(out, set)
			case "text":
				return printTokens(out, set)
			default:
				return fmt.Errorf("unknown output %q (want text or yaml)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format when printing all tables (text or yaml)")
	cmd.Flags().StringVar(&against, "diff", "", "show a unified diff from this built-in set to the configured one")
	return cmd
}

func resolveTokens(out io.Writer, set *tokens.Set, keys []string) error {
	var missing []string
	for _, key := range keys {
		value, ok := set.Resolve(key)
		if !ok {
			missing = append(missing, key)
			continue
		}
		fmt.Fprintf(out, "%s=%s\n", key, value)
	}
	if len(missing) > 0 {
		return fmt.Errorf("token set %q has no %s", set.Name(), strings.Join(missing, ", "))
	}
	return nil
}

func diffTokens(out io.Writer, set *tokens.Set, against string) error {
	base, err := tokens.ByName(against)
	if err != nil {
		return err
	}
	var from, to strings.Builder
	if err := printTokens(&from, base); err != nil {
		return err
	}
	if err := printTokens(&to, set); err != nil {
		return err
	}
	_, err = io.WriteString(out, diff.Unified(from.String(), to.String(), base.Name(), set.Name()))
	return err
}

func printTokens(out io.Writer, set *tokens.Set) error {
	for i, table := range set.Tables() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "[%s]\n", table)
		for _, key := range set.Keys(table) {
			fmt.Fprintf(out, "%s.%s = %s\n", table, key, set.MustResolve(table+"."+key))
		}
	}
	return nil
}

func printTokensYAML(out io.Writer, set *tokens.Set) error {
	doc := make(map[string]tokens.Table, len(set.Tables()))
	for _, name := range set.Tables() {
		table, _ := set.Table(name)
		doc[name] = table
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	return enc.Close()
}
