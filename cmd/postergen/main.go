// Command postergen renders one poster from a photo and a caption.
//
// It is the reference for how a surrounding layer (chat bot, HTTP handler)
// is expected to drive the engine: read bytes in, hand them to Generate,
// write bytes out.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"

	"github.com/posterkit/posterkit"
)

func main() {
	var (
		imagePath    = flag.String("image", "", "source photo (png/jpeg/gif/bmp/tiff/webp)")
		caption      = flag.String("caption", "", `caption, e.g. "1-message: Congratulations Team Alpha"`)
		outDir       = flag.String("out", "output", "output directory")
		templatesDir = flag.String("templates", "", "template directory (overrides POSTERKIT_TEMPLATES_DIR)")
		fontsDir     = flag.String("fonts", "", "font directory (overrides POSTERKIT_FONTS_DIR)")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *imagePath == "" || *caption == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		posterkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := posterkit.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	if *templatesDir != "" {
		cfg.TemplatesDir = *templatesDir
	}
	if *fontsDir != "" {
		cfg.FontsDir = *fontsDir
	}

	eng, err := posterkit.NewEngineFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	photo, err := os.ReadFile(*imagePath)
	if err != nil {
		log.Fatalf("Failed to read photo: %v", err)
	}

	res, err := eng.Generate(context.Background(), posterkit.PosterRequest{
		Image:   photo,
		Caption: *caption,
	})
	if err != nil {
		color.Error.Println("poster generation failed:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}

	name := fmt.Sprintf("poster_%s_%s.%s",
		time.Now().Format("20060102_150405"),
		strings.SplitN(uuid.NewString(), "-", 2)[0],
		res.Format)
	outPath := filepath.Join(*outDir, name)

	if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
		log.Fatalf("Failed to write poster: %v", err)
	}

	color.Success.Printf("poster saved to %s (%s, %dx%d)\n", outPath, res.TemplateID, res.Width, res.Height)
	if res.Truncated {
		color.Warn.Println("caption text was truncated to fit its slot")
	}
}
