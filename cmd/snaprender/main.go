// Snapshot render tool - draws a saved lattice snapshot to a PNG file.
//
// Usage: go run ./cmd/snaprender -snapshot out/<run>/snapshots/snapshot_120_fish_crash.json -out lattice.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/camera"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/renderer"
	"github.com/pthm-cable/wator/renderer/instances"
	"github.com/pthm-cable/wator/telemetry"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "Path to a snapshot JSON file")
	configPath := flag.String("config", "", "Config YAML for render colors (empty = use defaults)")
	outPath := flag.String("out", "lattice.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 800, "Render height")
	yaw := flag.Float64("yaw", 0, "Extra camera yaw in radians")
	flag.Parse()

	if *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "-snapshot is required")
		os.Exit(1)
	}
	snap, err := telemetry.LoadSnapshot(*snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	dims := snap.Settings.Dimensions
	buf := instances.New(dims.Volume())
	fillBuffer(buf, snap)

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Snapshot Render")
	defer rl.CloseWindow()

	scene, err := renderer.NewScene(cfg.Render)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create scene: %v\n", err)
		os.Exit(1)
	}
	scene.Init()
	defer scene.Unload()

	cam := camera.New(dims.X, dims.Y, dims.Z)
	cam.Rotate(float32(*yaw), 0)

	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.NewColor(5, 18, 18, 255))
	scene.Draw(cam, buf, dims)
	fish, sharks := snap.Counts()
	rl.DrawText(fmt.Sprintf("tick %d  fish %d  sharks %d", snap.Tick, fish, sharks), 10, 10, 20, rl.RayWhite)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Snapshot rendered to: %s (%dx%d)\n", *outPath, *width, *height)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
