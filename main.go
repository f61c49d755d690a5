package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	settings := parseArgs()

	if err := configureLogging(settings.LogLevel, settings.JSON); err != nil {
		log.Fatal(err)
	}

	if err := settings.validate(); err != nil {
		fatalError("Invalid settings", err)
	}

	in, err := openInput(settings.Input)
	if err != nil {
		fatalError("Couldn't open input", err)
	}
	defer closeFile(settings.Input, in)

	out, err := openOutput(settings.Output)
	if err != nil {
		fatalError("Couldn't open output", err)
	}
	defer closeFile(settings.Output, out)

	job, err := newScanJob(settings, in, out)
	if err != nil {
		fatalError("Couldn't start scan", err)
	}

	err = job.run()

	if settings.Summary {
		if sumErr := printSummary(os.Stderr, job.summary(), colorize(os.Stderr, settings.NoColor)); sumErr != nil {
			logError("Couldn't print summary", sumErr)
		}
	}

	if err != nil {
		logError("Scan failed", err)
		closeFile(settings.Output, out)
		closeFile(settings.Input, in)
		os.Exit(EXIT_FAILURE)
	}
}

func parseArgs() ScanSettings {
	var config string
	var mode string
	var input string
	var output string
	var capacity int
	var readBuffer int
	var threshold int
	var filter string
	var wide bool
	var skip bool
	var loggingLevel string
	var json bool
	var summary bool
	var noColor bool

	defaults := defaultSettings()

	flag.StringVar(&config, "c", "", "Path to a YAML settings file")
	flag.StringVar(&mode, "m", defaults.Mode, "Mode (tokens, ints, sum, count, lines, freq)")
	flag.StringVar(&input, "f", defaults.Input, "Input file (- for stdin)")
	flag.StringVar(&output, "o", defaults.Output, "Output file (- for stdout)")
	flag.IntVar(&capacity, "b", defaults.Capacity, "Initial token buffer capacity")
	flag.IntVar(&readBuffer, "r", defaults.ReadBuffer, "Read buffer size in bytes")
	flag.IntVar(&threshold, "t", defaults.FlushThreshold, "Output flush threshold in bytes")
	flag.StringVar(&filter, "e", defaults.Filter, "Filter expression over tok, n and i")
	flag.BoolVar(&wide, "w", defaults.Wide, "Parse integers as 64-bit")
	flag.BoolVar(&skip, "k", defaults.SkipMalformed, "Skip malformed numbers instead of failing")
	flag.StringVar(&loggingLevel, "l", defaults.LogLevel, "Logging level (trace, debug, info, etc)")
	flag.BoolVar(&json, "j", defaults.JSON, "JSON logger formatter")
	flag.BoolVar(&summary, "s", defaults.Summary, "Print a summary to stderr")
	flag.BoolVar(&noColor, "n", defaults.NoColor, "Disable colored summary")

	flag.Parse()

	settings := defaults
	if config != "" {
		var err error
		settings, err = loadSettings(config)
		if err != nil {
			fatalError("Couldn't load settings", err)
		}
	}

	// Flags given explicitly win over the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "m":
			settings.Mode = mode
		case "f":
			settings.Input = input
		case "o":
			settings.Output = output
		case "b":
			settings.Capacity = capacity
		case "r":
			settings.ReadBuffer = readBuffer
		case "t":
			settings.FlushThreshold = threshold
		case "e":
			settings.Filter = filter
		case "w":
			settings.Wide = wide
		case "k":
			settings.SkipMalformed = skip
		case "l":
			settings.LogLevel = loggingLevel
		case "j":
			settings.JSON = json
		case "s":
			settings.Summary = summary
		case "n":
			settings.NoColor = noColor
		}
	})

	if args := flag.Args(); len(args) > 0 && !explicitlySet("f") {
		settings.Input = args[0]
	}

	return settings
}

func explicitlySet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
