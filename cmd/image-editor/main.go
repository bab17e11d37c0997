package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/image-editor/internal/codec"
	"github.com/ironsheep/image-editor/internal/config"
	"github.com/ironsheep/image-editor/internal/editor"
	"github.com/ironsheep/image-editor/internal/shell"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version information")
	debug := flag.Bool("debug", false, "enable debug logging")
	configPath := flag.String("config", "", "path to YAML config file")
	inPath := flag.String("open", "", "image to open on startup")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("image-editor %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "image-editor: %v\n", err)
		os.Exit(1)
	}

	// Stdout carries command results; logging goes to stderr.
	logger := initLogger(*debug || cfg.Debug)
	logger.WithFields(logrus.Fields{
		"version":      Version,
		"jpeg_quality": cfg.JPEGQuality,
	}).Debug("starting image editor")

	session := editor.NewSession(logger, codec.SaveOptions{JPEGQuality: cfg.JPEGQuality})
	if *inPath != "" {
		if err := session.Load(*inPath); err != nil {
			fmt.Fprintf(os.Stderr, "image-editor: %v\n", err)
			os.Exit(1)
		}
	}

	sh := shell.New(session, logger)
	if err := sh.Run(os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Fatal("shell error")
	}
}

func initLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func usage() {
	fmt.Println("image-editor - interactive raster image editor")
	fmt.Println()
	fmt.Println("Usage: image-editor [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -open <path>     image to open on startup")
	fmt.Println("  -config <path>   YAML config file (jpeg_quality, debug)")
	fmt.Println("  -debug           enable debug logging")
	fmt.Println("  -version         print version information")
	fmt.Println()
	fmt.Println("The editor reads commands from stdin; type \"help\" for a list.")
}
