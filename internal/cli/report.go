package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yildizm/chanview/internal/config"
	"github.com/yildizm/chanview/internal/formatter"
	"github.com/yildizm/chanview/internal/logger"
)

// newCLILogger creates the stderr logger used by the non-interactive commands
func newCLILogger(cfg *config.Config) *logger.Logger {
	return logger.New("chanview", cfg)
}

// writeReport renders a report in the configured format and writes it to
// outputFile, or to w when outputFile is empty
func writeReport(w io.Writer, cfg *config.Config, outputFile string, render func(formatter.Formatter) ([]byte, error)) error {
	f, err := formatter.New(cfg.Output.DefaultFormat, outputFile == "" && colorEnabled(cfg))
	if err != nil {
		return err
	}

	output, err := render(f)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	return handleOutputDestination(w, output, outputFile)
}

// handleOutputDestination writes output to file or w
func handleOutputDestination(w io.Writer, output []byte, outputFile string) error {
	if outputFile == "" {
		_, err := w.Write(output)
		return err
	}

	if err := validateOutputFilePath(outputFile); err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := writeOutputBytesToFile(output, outputFile); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}

	if isVerbose() {
		fmt.Fprintf(os.Stderr, "Output saved to: %s\n", outputFile)
	}
	return nil
}

func validateOutputFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}

// writeOutputBytesToFile writes output to a file with proper error handling
func writeOutputBytesToFile(output []byte, filePath string) error {
	cleanPath := filepath.Clean(filePath)

	file, err := os.Create(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && isVerbose() {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
		}
	}()

	if _, err := file.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Sync to ensure data is written
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	return nil
}
