package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"minifeed/internal/config"
	"minifeed/internal/kvstore"
	"minifeed/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: snapshot_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Remove keys absent from the snapshot before import")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize store
	kv, err := kvstore.OpenWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer kv.Close()

	snapshotService := service.NewSnapshotService(kv)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(snapshotService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(snapshotService, *importInput, *importClear)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(snapshotService *service.SnapshotService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("snapshot_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	if err := snapshotService.ExportToFile(outputPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	fmt.Printf("Snapshot written to %s\n", outputPath)
}

func handleImport(snapshotService *service.SnapshotService, inputPath string, clear bool) {
	if err := snapshotService.ImportFromFile(inputPath, clear); err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Snapshot restored from %s\n", inputPath)
}

func printUsage() {
	fmt.Println("Usage: snapshot <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  export    Write the persisted state to a JSON snapshot file")
	fmt.Println("  import    Restore the persisted state from a JSON snapshot file")
}
