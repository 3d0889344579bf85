package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"github.com/sheikhrachel/lifeless/model"
	"github.com/sheikhrachel/lifeless/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool(config.Width, config.Height)
	}

	grid := model.NewGrid(config.Width, config.Height)
	grid.ResetWithInterestingPatterns(config.RandomDensity)

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, pool, renderer, stats
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Memory Pool: %v (Parallel step: always enabled)\n",
		config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	detector *utils.StagnationDetector,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(grid.Generation(), livingCells, frameDuration)

	// Check for stagnation before recording the current generation
	fingerprint := grid.Fingerprint()
	isStagnant := detector.Stagnant(fingerprint)
	detector.Observe(fingerprint)

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", grid.Generation())
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	livingCells int,
	density float64,
	status string,
	grid *model.Grid,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		grid.Generation(), livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount int,
	generation uint64,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config, pool *model.GridPool) *model.Grid {
	w := wow.New(os.Stdout, spin.Get(spin.Dots), " Loading new patterns...")
	w.Start()
	time.Sleep(time.Second)

	var grid *model.Grid
	if pool != nil {
		grid = pool.Get()
	} else {
		grid = model.NewGrid(config.Width, config.Height)
	}
	grid.ResetWithInterestingPatterns(config.RandomDensity)

	w.PersistWith(spin.Spinner{Frames: []string{"✨"}},
		fmt.Sprintf(" New patterns loaded! Living cells: %d", grid.CountLivingCells()))
	time.Sleep(time.Second)

	return grid
}

// runInteractive drives the frame loop until interrupted
func runInteractive(config utils.Config) {
	grid, pool, renderer, stats := initializeGame(config)
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		detector      utils.StagnationDetector
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, &detector, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(livingCells, density, status, grid, stats)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && grid.Generation() >= uint64(config.MaxGenerations) {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, grid.Generation(), config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			// Return old grid to pool if using memory pooling
			model.GridToPool(grid, pool)

			// Restart game with a fresh board at generation 0
			grid = restartGame(config, pool)
			detector.Reset()
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		// Calculate next generation
		newGrid := grid.StepPooled(pool)

		// Return old grid to pool if using memory pooling
		model.GridToPool(grid, pool)
		grid = newGrid

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	model.GridToPool(grid, pool)
}

// runHeadless steps through MaxGenerations without rendering, showing a
// progress bar instead of the board
func runHeadless(config utils.Config) {
	grid, pool, _, _ := initializeGame(config)

	fmt.Printf("Running %d generations on a %dx%d grid\n",
		config.MaxGenerations, config.Width, config.Height)
	bar := pb.StartNew(config.MaxGenerations)

	start := time.Now()
	for i := 0; i < config.MaxGenerations; i++ {
		newGrid := grid.StepPooled(pool)
		model.GridToPool(grid, pool)
		grid = newGrid
		bar.Increment()
	}
	bar.Finish()

	elapsed := time.Since(start)
	fmt.Printf("Completed %d generations in %.2fs (%.1f gen/sec) | Final living cells: %d\n",
		grid.Generation(), elapsed.Seconds(),
		float64(config.MaxGenerations)/elapsed.Seconds(), grid.CountLivingCells())
	model.GridToPool(grid, pool)
}
