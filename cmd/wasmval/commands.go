package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-values/engine"
	"github.com/wippyai/wasm-values/errors"
	"github.com/wippyai/wasm-values/literal"
	"github.com/wippyai/wasm-values/value"
)

func (a *app) renderCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "render <value>...",
		Short: "Render host values as literal text",
		Long: "Render each argument as literal text. Arguments that parse as numbers\n" +
			"are numbers (NaN, Inf and -0 included); anything else is a string.\n" +
			"Use -- before negative numbers.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := literal.NewPool()
			out := cmd.OutOrStdout()
			for _, arg := range args {
				s, err := literal.Render(parseHost(arg, long), pool)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			}
			printPool(out, pool)
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "render integer arguments as 64-bit Long")
	return cmd
}

func (a *app) sigCmd() *cobra.Command {
	var parse bool
	cmd := &cobra.Command{
		Use:   "sig <params> <results> | sig --parse <tag>",
		Short: "Encode a signature tag, or decode one with --parse",
		Example: "  wasmval sig i32,f64 i64\n" +
			"  wasmval sig --parse id_l",
		Args: func(cmd *cobra.Command, args []string) error {
			if parse {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.RangeArgs(0, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if parse {
				sig, err := value.ParseTag(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, sig.String())
				return nil
			}

			var sig value.Signature
			var err error
			if len(args) > 0 {
				if sig.Params, err = parseKinds(args[0]); err != nil {
					return err
				}
			}
			if len(args) > 1 {
				if sig.Results, err = parseKinds(args[1]); err != nil {
					return err
				}
			}
			tag, err := sig.Tag()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, tag)
			return nil
		},
	}
	cmd.Flags().BoolVar(&parse, "parse", false, "decode a tag into its signature")
	return cmd
}

func (a *app) callCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "call <file.wasm> <export> [args...]",
		Short: "Call a numeric export and print its results",
		Long: "Call an export with host number arguments. Results are printed as\n" +
			"literal text, or with --raw as host values subject to --preserve-i64\n" +
			"and --strict-i64.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mod, closeFn, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			hosts := make([]any, 0, len(args)-2)
			for _, arg := range args[2:] {
				hosts = append(hosts, parseHost(arg, true))
			}

			out := cmd.OutOrStdout()
			if raw {
				results, err := mod.Call(ctx, args[1], hosts...)
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintln(out, r)
				}
				return nil
			}

			pool := literal.NewPool()
			results, err := mod.Render(ctx, args[1], pool, hosts...)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintln(out, r)
			}
			printPool(out, pool)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print host values instead of literals")
	return cmd
}

func (a *app) exportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exports <file.wasm>",
		Short: "List callable exports with their signature tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mod, closeFn, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			exports := mod.Exports()
			out := cmd.OutOrStdout()
			for _, name := range mod.ExportNames() {
				sig := exports[name]
				tag, err := sig.Tag()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", name, tag, sig)
			}
			return nil
		},
	}
}

func (a *app) scriptNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script-name",
		Short: "Print the configured script filename",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.cfg.ScriptName()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

func (a *app) load(cmd *cobra.Command, path string) (*engine.Module, func(), error) {
	ctx := cmd.Context()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	eng, err := engine.New(ctx, a.cfg.Engine())
	if err != nil {
		return nil, nil, err
	}
	mod, err := eng.Load(ctx, data)
	if err != nil {
		_ = eng.Close(ctx)
		return nil, nil, err
	}
	return mod, func() { _ = eng.Close(ctx) }, nil
}

// parseHost turns a CLI argument into a host value. With ints set, integer
// text is kept as int64 so i64 parameters receive every digit.
func parseHost(arg string, ints bool) any {
	if ints {
		if n, err := strconv.ParseInt(arg, 10, 64); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	return arg
}

func parseKinds(list string) ([]value.Kind, error) {
	if list == "" {
		return nil, nil
	}
	names := strings.Split(list, ",")
	kinds := make([]value.Kind, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		k, err := value.ParseKind(name)
		if err != nil {
			return nil, errors.UnknownKind(errors.ClassCompile, errors.PhaseSignature, name)
		}
		kinds[i] = k
	}
	return kinds, nil
}

func printPool(w io.Writer, pool *literal.Pool) {
	for i, s := range pool.Values() {
		fmt.Fprintf(w, "constants[%d] = %q\n", i, s)
	}
}
