package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"placesearch-api/internal/config"
	"placesearch-api/internal/export"
	"placesearch-api/internal/models"
	"placesearch-api/internal/places"
	"placesearch-api/internal/service"
)

func main() {
	queriesFile := flag.String("queries", "", "Path to a file with one search query per line (max 10)")
	outFile := flag.String("out", "places-export.csv", "Output file path")
	format := flag.String("format", "csv", "Output format: csv or json")
	categories := flag.String("categories", "", "Comma-separated category filter")
	maxResults := flag.Int("max", 20, "Maximum results per query (1-20)")
	flag.Parse()

	if *queriesFile == "" {
		fmt.Println("Error: --queries flag is required")
		os.Exit(1)
	}
	if *format != "csv" && *format != "json" {
		fmt.Printf("Error: unsupported format %q\n", *format)
		os.Exit(1)
	}

	queries, err := readQueries(*queriesFile)
	if err != nil {
		fmt.Printf("Error reading queries: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d queries from %s\n", len(queries), *queriesFile)

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	client := places.NewClient(places.ClientConfig{
		APIKey:            cfg.PlacesAPIKey,
		BaseURL:           cfg.PlacesBaseURL,
		RequestTimeout:    cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	searchService := service.NewSearchService(places.NewNegotiator(client), cfg.BulkQueryDelay)

	filters := models.SearchFilters{MaxResults: *maxResults}
	if *categories != "" {
		filters.Categories = strings.Split(*categories, ",")
	}

	combined, breakdown, err := searchService.BulkSearch(context.Background(), queries, filters)
	if err != nil {
		fmt.Printf("Error running bulk search: %v\n", err)
		os.Exit(1)
	}

	for _, result := range breakdown {
		if result.Error != "" {
			fmt.Printf("  %-40s FAILED: %s\n", result.Query, result.Error)
			continue
		}
		fmt.Printf("  %-40s %d places\n", result.Query, result.Count)
	}

	if err := writeExport(*outFile, *format, combined); err != nil {
		fmt.Printf("Error writing export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d places to %s\n", len(combined), *outFile)
}

func readQueries(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var queries []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(queries) == 0 {
		return nil, fmt.Errorf("no queries found in %s", filePath)
	}
	if len(queries) > 10 {
		return nil, fmt.Errorf("too many queries: %d, maximum is 10", len(queries))
	}

	return queries, nil
}

func writeExport(filePath, format string, placesList []models.CanonicalPlace) error {
	if format == "csv" {
		csvData, err := export.GenerateCSV(placesList)
		if err != nil {
			return err
		}
		return os.WriteFile(filePath, []byte(csvData), 0o644)
	}

	payload := map[string]interface{}{
		"exported_at":  time.Now().UTC().Format(time.RFC3339),
		"total_places": len(placesList),
		"places":       placesList,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return os.WriteFile(filePath, data, 0o644)
}
