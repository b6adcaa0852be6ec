// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	var (
		cfgFile string
		vars    map[string]string
	)
	root := &cobra.Command{
		Use:           "gcalc",
		Short:         "Numeric methods of a graphing calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgFile, vars)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.Int("precision", 6, "digits after the decimal point")
	pf.StringToStringVar(&vars, "var", nil, "bind a named value, e.g. --var a=2 (repeatable; values see config memory, not other --var)")
	_ = a.v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(keyPrecision, pf.Lookup("precision"))

	root.AddCommand(
		newEvalCmd(a),
		newRootsCmd(a),
		newIntersectCmd(a),
		newIntegrateCmd(a),
		newDblIntCmd(a),
		newLimitCmd(a),
		newDerivCmd(a),
		newTangentCmd(a),
		newODECmd(a),
		newRREFCmd(a),
		newLUCmd(a),
		newQRCmd(a),
		newEigCmd(a),
		newDetCmd(a),
		newInvCmd(a),
		newSolveCmd(a),
		newAddCmd(a),
		newSubCmd(a),
		newMulCmd(a),
		newTransposeCmd(a),
		newScaleCmd(a),
		newVecCmd(a),
		newFitCmd(a),
		newStatsCmd(a),
		newHistCmd(a),
		newDistCmd(a),
	)

	return root
}
