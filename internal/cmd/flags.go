package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	clierrors "github.com/salmonumbrella/consoletable/internal/errors"
)

// flagAlias registers a hidden flag alias that shares the same underlying value.
// The alias is hidden from help output.
func flagAlias(fs *pflag.FlagSet, name, alias string) {
	f := fs.Lookup(name)
	if f == nil {
		return
	}
	fs.AddFlag(&pflag.Flag{
		Name:        alias,
		Usage:       f.Usage,
		Value:       f.Value,
		DefValue:    f.DefValue,
		NoOptDefVal: f.NoOptDefVal,
		Hidden:      true,
	})
}

// commandFlagChanged reports whether name (local or inherited) was set.
func commandFlagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

// usageArgs turns positional argument failures into user errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return clierrors.NewUserError(err.Error(), fmt.Sprintf("Usage: %s", cmd.UseLine()))
		}
		return nil
	}
}

func flagErrorFunc(cmd *cobra.Command, err error) error {
	return clierrors.NewUserError(err.Error(), fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
}
