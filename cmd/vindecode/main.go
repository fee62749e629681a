// Command vindecode is a thin CLI wrapper over pkg/vin for interactive
// and manual VIN lookups. It is not part of the decoder's correctness
// surface.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vpicgo/vindecoder/pkg/vin"
)

var noColor bool

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vindecode",
		Short: "Validate and decode Vehicle Identification Numbers",
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.AddCommand(decodeCmd(), validateCmd())
	return root
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <vin>",
		Short: "Decode a VIN against the bundled vPIC snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vin.Decode(args[0])
			if err != nil {
				return err
			}
			printField("VIN", v.VIN)
			printField("Manufacturer", v.Manufacturer)
			printField("Make", v.Make)
			printField("Model", v.Model)
			printField("Series", v.Series)
			printField("Trim", v.Trim)
			printField("Body Class", v.BodyClass)
			printField("Vehicle Type", v.VehicleType)
			printField("Model Year", yearString(v.ModelYear))
			printField("Plant Country", v.PlantCountry)
			printField("Plant City", v.PlantCity)
			printField("Plant Company", v.PlantCompany)
			printField("Plant State", v.PlantState)
			printField("Electrification", v.ElectrificationLevel)
			printField("Description", v.Description)
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "validate <vin>",
		Short: "Validate a VIN's length, character set, and check digit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vin.Parse(args[0], fix)
			if err != nil {
				return err
			}
			success("%s is valid", v.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "correct a wrong check digit instead of failing")
	return cmd
}

func printField(name, value string) {
	if value == "" {
		return
	}
	if noColor {
		fmt.Printf("%-16s %s\n", name+":", value)
		return
	}
	color.New(color.FgCyan).Printf("%-16s", name+":")
	fmt.Printf(" %s\n", value)
}

func success(format string, args ...interface{}) {
	if noColor {
		fmt.Printf(format+"\n", args...)
		return
	}
	color.New(color.FgGreen).Printf(format+"\n", args...)
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%d", year)
}
