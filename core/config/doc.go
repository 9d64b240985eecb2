// Package config provides configuration management for the Spreader Detector.
//
// It uses Viper to merge struct tag defaults, an optional config.yaml and
// environment variables (a .env file is loaded first when present).
//
// # Configuration Structure
//
//   - Analysis: output file, model constants (min distance, max time),
//     tier thresholds, risk age and the three report templates
//   - Server: HTTP port, API key and upload limit
//   - Storage: S3/MinIO credentials and report bucket
//   - Log: logging level and format
//   - Database: optional MySQL connection for run recording
//
// Environment variables map onto nested keys with underscores, e.g.
// ANALYSIS_OUTPUT_FILE overrides analysis.output_file.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Analysis.OutputFile)
package config
