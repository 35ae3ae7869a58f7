package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample inventory sequence",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	seeds := []struct {
		item string
		qty  int
	}{
		{"apple", 10},
		{"banana", 2},
		{"grape", 12},
	}
	for _, seed := range seeds {
		if err := env.store.Add(seed.item, seed.qty); err != nil {
			env.logger.Error("error adding item",
				zap.String("item", seed.item),
				zap.Error(err))
		}
	}

	_, _ = env.store.Remove("apple", 3)
	_, _ = env.store.Remove("orange", 1)

	appleQty, _ := env.store.Quantity("apple")
	fmt.Printf("Apple stock: %d\n", appleQty)

	low, _ := env.store.LowStock(env.cfg.LowStockThreshold)
	fmt.Printf("Low items: %v\n", low)

	env.store.Save(env.file)
	env.store.Load(env.file)

	if err := env.store.WriteReport(os.Stdout); err != nil {
		return err
	}

	if entries := env.sink.Entries(); len(entries) > 0 {
		fmt.Println("\nOperation logs:")
		for _, entry := range entries {
			fmt.Println(entry)
		}
	}
	return nil
}
