package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var lowThreshold int

var addCmd = &cobra.Command{
	Use:   "add ITEM QTY",
	Short: "Add quantity of an item to stock",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var removeCmd = &cobra.Command{
	Use:   "remove ITEM QTY",
	Short: "Remove quantity of an item from stock",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

var getCmd = &cobra.Command{
	Use:   "get ITEM",
	Short: "Print the stored quantity of an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "List items below the low-stock threshold",
	Args:  cobra.NoArgs,
	RunE:  runLow,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full stock report",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	lowCmd.Flags().IntVarP(&lowThreshold, "threshold", "t", -1,
		"Low-stock threshold (defaults to STOCKPILE_LOW_THRESHOLD)")
}

func parseQty(arg string) (int, error) {
	qty, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer, got %q", arg)
	}
	return qty, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	qty, err := parseQty(args[1])
	if err != nil {
		return err
	}

	env, err := setup()
	if err != nil {
		return err
	}

	env.store.Load(env.file)
	if err := env.store.Add(args[0], qty); err != nil {
		return err
	}
	env.store.Save(env.file)

	total, _ := env.store.Quantity(args[0])
	fmt.Printf("%s -> %d\n", args[0], total)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	qty, err := parseQty(args[1])
	if err != nil {
		return err
	}

	env, err := setup()
	if err != nil {
		return err
	}

	env.store.Load(env.file)
	removed, err := env.store.Remove(args[0], qty)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("%s not in stock\n", args[0])
		return nil
	}
	env.store.Save(env.file)

	total, _ := env.store.Quantity(args[0])
	fmt.Printf("%s -> %d\n", args[0], total)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	env.store.Load(env.file)
	qty, err := env.store.Quantity(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s -> %d\n", args[0], qty)
	return nil
}

func runLow(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	threshold := lowThreshold
	if threshold < 0 {
		threshold = env.cfg.LowStockThreshold
	}

	env.store.Load(env.file)
	low, err := env.store.LowStock(threshold)
	if err != nil {
		return err
	}

	fmt.Printf("Low items: %v\n", low)
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	env.store.Load(env.file)
	return env.store.WriteReport(os.Stdout)
}
