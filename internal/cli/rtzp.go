package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/antarctica/mdlib/internal/rtzp"
	"github.com/antarctica/mdlib/internal/tui"
	"github.com/antarctica/mdlib/pkg/mdlib"
	"github.com/antarctica/mdlib/pkg/standards"
)

// errRoutesDiffer is returned by rtzp diff when the routes are not equal.
var errRoutesDiffer = errors.New("routes differ")

var rtzpCmd = &cobra.Command{
	Use:   "rtzp",
	Short: "Pack, unpack and compare RTZP route containers",
	Long: `RTZP containers are zip archives holding a single RTZ route file.

Subcommands:
  pack    Generate a route from a configuration and package it
  unpack  Read the route in a container back into a configuration
  diff    Compare the routes in two containers`,
}

var rtzpPackCmd = &cobra.Command{
	Use:               "pack <standard> <route.json>",
	Short:             "Package a route configuration as an RTZP container",
	Args:              requireArgs("standard", "route.json"),
	ValidArgsFunction: completeStandards,
	RunE:              runRTZPPack,
}

var rtzpUnpackCmd = &cobra.Command{
	Use:               "unpack <standard> <route.rtzp>",
	Short:             "Read the route configuration from an RTZP container",
	Args:              requireArgs("standard", "route.rtzp"),
	ValidArgsFunction: completeStandards,
	RunE:              runRTZPUnpack,
}

var rtzpDiffCmd = &cobra.Command{
	Use:               "diff <standard> <a.rtzp> <b.rtzp>",
	Short:             "Compare the routes in two RTZP containers",
	Args:              requireArgs("standard", "a.rtzp", "b.rtzp"),
	ValidArgsFunction: completeStandards,
	RunE:              runRTZPDiff,
}

var rtzpFlags struct {
	output string
	name   string
}

func init() {
	rootCmd.AddCommand(rtzpCmd)
	rtzpCmd.AddCommand(rtzpPackCmd, rtzpUnpackCmd, rtzpDiffCmd)

	rtzpPackCmd.Flags().StringVarP(&rtzpFlags.output, "output", "o", "", "Write the container to a file instead of stdout")
	rtzpPackCmd.Flags().StringVar(&rtzpFlags.name, "name", "", "Route file name inside the container (default: route_name)")
	rtzpUnpackCmd.Flags().StringVarP(&rtzpFlags.output, "output", "o", "", "Write the configuration to a file instead of stdout")
}

// routeStandard looks up an IEC PAS 61174 standard.
func routeStandard(id string) (standards.Standard, error) {
	std, err := standards.Lookup(id)
	if err != nil {
		return std, err
	}
	if !strings.HasPrefix(std.ID, "iec-pas-61174") {
		return std, fmt.Errorf("%w: %s does not describe routes", mdlib.ErrUnknownStandard, std.ID)
	}
	return std, nil
}

func runRTZPPack(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	std, err := routeStandard(args[0])
	if err != nil {
		return err
	}
	config, err := readInput(cmd, args[1])
	if err != nil {
		return err
	}

	record, err := std.Generate(cmd.Context(), config)
	if err != nil {
		return err
	}

	name := rtzpFlags.name
	if name == "" {
		var route struct {
			RouteName string `json:"route_name"`
		}
		if err := json.Unmarshal(config, &route); err != nil || route.RouteName == "" {
			return fmt.Errorf("route has no route_name, use --name")
		}
		name = route.RouteName
	}
	container, err := rtzp.Pack(name, record)
	if err != nil {
		return err
	}
	logger.Verbose("Packed %s.rtz (%d bytes)", name, len(container))
	return writeOutput(cmd, rtzpFlags.output, container)
}

func runRTZPUnpack(cmd *cobra.Command, args []string) error {
	std, err := routeStandard(args[0])
	if err != nil {
		return err
	}
	config, err := unpackRoute(cmd, std, args[1])
	if err != nil {
		return err
	}
	return writeOutput(cmd, rtzpFlags.output, config)
}

func runRTZPDiff(cmd *cobra.Command, args []string) error {
	std, err := routeStandard(args[0])
	if err != nil {
		return err
	}

	routes := make([]map[string]any, 2)
	for i, path := range args[1:] {
		config, err := unpackRoute(cmd, std, path)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(config, &routes[i]); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	printer := tui.NewPrinter(tui.Styled(out))
	diff := cmp.Diff(routes[0], routes[1])
	if diff == "" {
		fmt.Fprintln(out, "Routes are identical")
		return nil
	}
	fmt.Fprintln(out, printer.Title(fmt.Sprintf("--- %s\n+++ %s", args[1], args[2])))
	fmt.Fprint(out, printer.Diff(diff))
	return errRoutesDiffer
}

func unpackRoute(cmd *cobra.Command, std standards.Standard, path string) ([]byte, error) {
	data, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}
	record, err := rtzp.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return std.Parse(record)
}
