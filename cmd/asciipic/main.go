// asciipic converts images into rasterized ASCII-art pictures. Sources may
// be local files or http(s) URLs, given as arguments or streamed one per
// line on stdin; each conversion prints the written artifact path.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Mlies-mik/astrbot-ASCII-se/asciiart"
	"github.com/Mlies-mik/astrbot-ASCII-se/internal/botcmd"
	"github.com/Mlies-mik/astrbot-ASCII-se/internal/config"
	"github.com/Mlies-mik/astrbot-ASCII-se/internal/fetch"
	"github.com/Mlies-mik/astrbot-ASCII-se/internal/janitor"
)

const (
	configUsage = "Path to a JSON config file. Missing fields keep their defaults."
	paramsUsage = "Bot-style parameter string parsed with the configured flag tokens,\n" +
		`e.g. "--scale 1.5 --chinese" or "--charset @#S%?*+;:,."` + "\n"
	scaleUsage   = "Grid scale factor. Overrides the value from -params. Clamped into the configured bounds."
	charsetUsage = "Luminance ramp, darkest character first. Overrides the value from -params."
	wideUsage    = "Use wide-glyph (CJK) mode."
	outUsage     = "Output directory for artifacts. Defaults to the configured directory."
	maxDimUsage  = "Ceiling for either output dimension in pixels. Cannot exceed the hard limit."
	sweepUsage   = "Run one cleanup sweep over the output directory and exit."
	verboseUsage = "Enable logging to stderr."
)

func main() {
	var (
		configPath string
		params     string
		scale      float64
		charset    string
		wide       bool
		outDir     string
		maxDim     int
		sweep      bool
		verbose    bool
	)

	flag.StringVar(&configPath, "config", "", configUsage)
	flag.StringVar(&params, "params", "", paramsUsage)
	flag.Float64Var(&scale, "scale", 0, scaleUsage)
	flag.StringVar(&charset, "charset", "", charsetUsage)
	flag.BoolVar(&wide, "wide", false, wideUsage)
	flag.StringVar(&outDir, "out", "", outUsage)
	flag.IntVar(&maxDim, "max-dim", 0, maxDimUsage)
	flag.BoolVar(&sweep, "sweep", false, sweepUsage)
	flag.BoolVar(&verbose, "v", false, verboseUsage)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if verbose {
		asciiart.SetLogger(log)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = os.TempDir()
	}

	if sweep {
		j := &janitor.Janitor{
			Dir:    outDir,
			Prefix: asciiart.DefaultOutputPrefix,
			MaxAge: time.Duration(cfg.CacheMaxAgeMinutes) * time.Minute,
		}
		if verbose {
			j.Logger = log
		}
		removed := j.Sweep(time.Now())
		fmt.Printf("removed %d expired artifact(s)\n", removed)
		return
	}

	// Bot-style params first, explicit flags on top.
	parser := botcmd.Parser{
		ScaleToken:              cfg.ScaleToken,
		CharsetToken:            cfg.CharsetToken,
		WideGlyphToken:          cfg.WideGlyphToken,
		DefaultScale:            cfg.DefaultScale,
		DefaultCharset:          cfg.DefaultCharset,
		DefaultWideGlyphCharset: cfg.DefaultWideGlyphCharset,
	}
	req := parser.Parse(params)
	if scale > 0 {
		req.Scale = scale
	}
	if wide {
		req.Mode = asciiart.ModeWideGlyph
		if !req.CharsetSet && charset == "" {
			req.Charset = cfg.DefaultWideGlyphCharset
		}
	}
	if charset != "" {
		req.Charset = charset
	}

	clamped, adjusted := botcmd.Clamp(req.Scale, cfg.MinScale, cfg.MaxScale)
	if adjusted {
		fmt.Fprintf(os.Stderr, "scale %.2f is outside [%.2f, %.2f]; using %.2f\n",
			req.Scale, cfg.MinScale, cfg.MaxScale, clamped)
	}

	ceiling := cfg.MaxDimension
	if maxDim > 0 {
		ceiling = maxDim
	}

	conv := asciiart.New(
		asciiart.WithScale(clamped),
		asciiart.WithCharset(req.Charset),
		asciiart.WithMode(req.Mode),
		asciiart.WithMaxDimension(ceiling),
		asciiart.WithOutputDir(outDir),
	)
	client := &fetch.Client{MaxBytes: cfg.MaxFetchBytes}

	args := flag.Args()
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			convertOne(conv, client, scanner.Text())
		}
		return
	}

	for _, arg := range args {
		convertOne(conv, client, arg)
	}
}

func convertOne(conv *asciiart.Converter, client *fetch.Client, src string) {
	data, err := client.Source(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", src, err)
		return
	}

	path, err := conv.ConvertBytes(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", src, err)
		return
	}

	fmt.Println(path)
}
