// regionscan resolves marked regions in a rendered resume PDF and
// reports them, optionally exporting the region mapping as JSON and an
// annotated overlay image.
//
// Usage:
//
//	regionscan -pdf resume.pdf [options]
//
// Flags:
//
//	-pdf string      Path to the input PDF (required)
//	-config string   Path to a YAML options file
//	-json string     Path for the JSON region export ("default" writes
//	                 next to the input as <pdf>.regions.json)
//	-overlay string  Path for an annotated PNG of one page ("default"
//	                 writes next to the input as <pdf>.overlay_page<N>.png)
//	-page int        0-based page for the overlay (default 0)
//	-zoom float      Overlay render scale (overrides the config)
//
// Example:
//
//	regionscan -pdf resume.pdf -json default -overlay page0.png -zoom 2
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/mwhitfield/regionmark"
	"github.com/mwhitfield/regionmark/config"
	"github.com/mwhitfield/regionmark/export"
)

func main() {
	pdfPath := flag.String("pdf", "", "Path to the input PDF")
	configPath := flag.String("config", "", "Path to a YAML options file")
	jsonPath := flag.String("json", "", `Path for the JSON region export ("default" writes next to the input)`)
	overlayPath := flag.String("overlay", "", `Path for an annotated PNG of one page ("default" writes <pdf>.overlay_page<N>.png)`)
	page := flag.Int("page", 0, "0-based page for the overlay")
	zoom := flag.Float64("zoom", 0, "Overlay render scale (overrides the config)")
	flag.Parse()

	if *pdfPath == "" {
		fmt.Println("Error: Must provide -pdf path")
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *zoom > 0 {
		cfg.Zoom = *zoom
	}

	session, err := regionmark.Open(*pdfPath)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", *pdfPath, err)
		os.Exit(1)
	}
	defer session.Close()
	session.SetStyle(cfg.Style())

	for _, w := range session.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	regions := session.Regions()
	fmt.Printf("Found %d regions across %d pages\n", len(regions), session.PageCount())
	for _, id := range export.SortedIDs(regions) {
		r := regions[id]
		fmt.Printf("  %-8s page %d  rect [%.1f %.1f %.1f %.1f]  text %d chars\n",
			id, r.PageIndex, r.Rect.X0, r.Rect.Y0, r.Rect.X1, r.Rect.Y1, len(r.Text))
	}

	if *jsonPath != "" {
		out := *jsonPath
		if out == "default" {
			out = session.DefaultExportPath()
		}
		if err := session.ExportJSON(out); err != nil {
			fmt.Printf("Failed to export regions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d regions to %s\n", len(regions), out)
	}

	if *overlayPath != "" {
		out := *overlayPath
		if out == "default" {
			out = fmt.Sprintf("%s.overlay_page%d.png", *pdfPath, *page)
		}
		img, err := session.OverlayAt(*page, cfg.Zoom)
		if err != nil {
			fmt.Printf("Failed to render overlay: %v\n", err)
			os.Exit(1)
		}
		f, err := os.Create(out)
		if err != nil {
			fmt.Printf("Failed to create %s: %v\n", out, err)
			os.Exit(1)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			fmt.Printf("Failed to encode overlay: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote page %d overlay to %s\n", *page, out)
	}
}
