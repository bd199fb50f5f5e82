package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/Ivan-Ryukendo/FileXSorter/app"
	"github.com/Ivan-Ryukendo/FileXSorter/models"
	"github.com/Ivan-Ryukendo/FileXSorter/version"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (optional)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	dirs := flag.String("dir", "", "Comma separated list of directories to scan (overrides config)")
	recursive := flag.Bool("recursive", true, "Descend into subdirectories")
	minSize := flag.Int64("min-size", 1, "Minimum file size in bytes")
	jsonOut := flag.Bool("json", false, "Print the result as JSON")
	doDelete := flag.Bool("delete", false, "Delete duplicates, keeping the first file of each group")
	moveDest := flag.String("move", "", "Move duplicates into this directory instead of deleting")
	flag.Parse()

	if *showVersion {
		fmt.Printf("filexsorter %s (%s, built %s)\n", version.Version, version.Commit, version.BuildDate)
		return
	}

	if *doDelete && *moveDest != "" {
		fmt.Fprintln(os.Stderr, "Error: -delete and -move are mutually exclusive")
		os.Exit(1)
	}

	scanCfg := models.ScanConfig{Recursive: *recursive, MinSize: *minSize}
	var roots []string
	historyPath := ""

	if *configPath != "" {
		cfg, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		scanCfg = cfg.Scan
		roots = cfg.RootPaths
		historyPath = cfg.History.DBPath
	}
	if *dirs != "" {
		roots = nil
		for _, d := range strings.Split(*dirs, ",") {
			if d = strings.TrimSpace(d); d != "" {
				roots = append(roots, d)
			}
		}
	}
	if len(roots) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no directories to scan. Use -dir or a config file.")
		os.Exit(1)
	}

	scanner := app.NewScanner(scanCfg)

	// First SIGINT cancels the scan, a second one kills the process.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		log.Println("Cancelling scan...")
		scanner.Cancel()
		signal.Stop(sigCh)
	}()

	stopTicker := make(chan struct{})
	if !*jsonOut {
		go reportProgress(scanner, stopTicker)
	}

	start := time.Now()
	result, err := scanner.Scan(roots)
	duration := time.Since(start)
	close(stopTicker)

	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	if scanner.Cancelled() {
		fmt.Fprintln(os.Stderr, "\nScan cancelled, partial result discarded")
		os.Exit(130)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
	} else {
		printReport(result, duration)
	}

	var ops *app.FileOps
	if *doDelete || *moveDest != "" {
		ops = applyActions(result, *doDelete, *moveDest)
	}

	if historyPath != "" {
		saveHistory(historyPath, roots, result, duration, ops)
	}
}

func reportProgress(scanner *app.Scanner, stop <-chan struct{}) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			processed, total := scanner.Progress()
			if total > 0 {
				fmt.Fprintf(os.Stderr, "\rHashing %d/%d files", processed, total)
			}
		}
	}
}

func printReport(result *models.ScanResult, duration time.Duration) {
	fmt.Fprintln(os.Stderr)
	fmt.Printf("Scanned %d files (%s) in %v\n",
		result.TotalFiles, models.FormatSize(result.TotalSize), duration.Round(time.Millisecond))

	for i, group := range result.DuplicateGroups {
		fmt.Printf("\nGroup %d: %d files, %s wasted (hash %.12s)\n",
			i+1, len(group.Files), models.FormatSize(group.WastedSize), group.Hash)
		for j, f := range group.Files {
			marker := "keep  "
			if j > 0 {
				marker = "remove"
			}
			fmt.Printf("  [%s] %s\n", marker, f.Path)
		}
	}

	fmt.Printf("\n%d duplicate files in %d groups, %s reclaimable\n",
		result.TotalDuplicates, len(result.DuplicateGroups), models.FormatSize(result.WastedSpace))

	if len(result.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d errors during scan:\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
	}
}

// applyActions removes or relocates every group member beyond the first.
func applyActions(result *models.ScanResult, doDelete bool, moveDest string) *app.FileOps {
	ops := app.NewFileOps()

	for _, group := range result.DuplicateGroups {
		for _, f := range group.Files[1:] {
			var entry models.OperationLog
			if doDelete {
				entry = ops.DeleteFile(f.Path)
			} else {
				entry = ops.MoveFile(f.Path, moveDest)
			}
			if !entry.Success {
				fmt.Fprintf(os.Stderr, "  %s\n", entry.Message)
			}
		}
	}

	succeeded := 0
	for _, entry := range ops.Logs() {
		if entry.Success {
			succeeded++
		}
	}
	fmt.Printf("\n%d/%d file operations succeeded\n", succeeded, len(ops.Logs()))

	return ops
}

func saveHistory(dbPath string, roots []string, result *models.ScanResult, duration time.Duration, ops *app.FileOps) {
	db, err := app.OpenHistory(dbPath)
	if err != nil {
		log.Printf("Failed to open history db: %v", err)
		return
	}
	defer db.Close()

	if _, err := app.SaveScan(db, roots, result, duration); err != nil {
		log.Printf("Failed to save scan history: %v", err)
	}
	if ops != nil {
		if err := app.SaveOperations(db, ops.Logs()); err != nil {
			log.Printf("Failed to save operation log: %v", err)
		}
	}
}
