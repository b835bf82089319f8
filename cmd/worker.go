package cmd

import (
	"sync"

	"synth/worker"
	"synth/worker/liquidator"
	"synth/worker/pricesync"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "synth job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		db := provideDatabase()
		system := provideSystem()

		propertyStore := providePropertyStore(db)
		vaultStore := provideVaultStore()
		priceStore := providePriceStore(db)

		priceService := providePriceService(system)
		valuationService := provideValuationService(system, priceService)
		solvencyService := provideSolvencyService(system, vaultStore, valuationService)

		workers := []worker.Worker{
			pricesync.New(system, priceService, priceStore),
			liquidator.New(system.Location, vaultStore, solvencyService, propertyStore),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
