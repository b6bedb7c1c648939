package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fogleman/ease"

	"github.com/wolfexplode/loopbake/bake"
	"github.com/wolfexplode/loopbake/clip"
	"github.com/wolfexplode/loopbake/curve"
	"github.com/wolfexplode/loopbake/logger"
	"github.com/wolfexplode/loopbake/preview"
)

const previewFile = "preview.html"

func main() {
	ctx := context.Background()
	Run(ctx)
}

// Run bakes a small demo show: two clips, a tempo curve that speeds up
// and falls away again, and a strength curve that fades the motion in.
func Run(ctx context.Context) {
	log := logger.GetProjectLogger()

	log.Info("Building demo curves...")
	tempo, err := curve.NewPoints([]curve.Point{
		{Time: 0, Value: 90},
		{Time: 4, Value: 180},
		{Time: 8, Value: 60},
		{Time: 10, Value: 60},
	})
	if err != nil {
		log.Fatalf("error building tempo curve. err='%v'", err)
	}

	strength, err := curve.NewPoints([]curve.Point{
		{Time: 0, Value: 0.2},
		{Time: 3, Value: 1.0},
		{Time: 10, Value: 1.0},
	})
	if err != nil {
		log.Fatalf("error building strength curve. err='%v'", err)
	}

	log.Info("Building demo clips...")
	walk := clip.New("walk").
		Set("pos_x", clip.NewKeys(
			clip.Key{T: 0, Value: 0, Ease: ease.InOutQuad},
			clip.Key{T: 0.5, Value: 1, Ease: ease.InOutQuad},
		)).
		Set("shape_key_smile", clip.Sine())

	bounce := clip.New("bounce").
		Set("pos_x", clip.NewKeys(
			clip.Key{T: 0, Value: 0, Ease: ease.OutBounce},
			clip.Key{T: 0.7, Value: 1},
		))

	cfg := bake.NewConfig(tempo)
	cfg.Strength = strength
	cfg.FrameStart = 0
	cfg.FrameEnd = 239
	cfg.Mode = bake.ModeMulti
	cfg.Slots = []bake.Slot{
		{Clip: "walk", Weight: 75},
		{Clip: "bounce", Weight: 25},
	}
	cfg.Seed = 42
	cfg.IntensityJitter = 0.15
	cfg.SpeedJitter = 0.1
	cfg.Preview = true
	cfg.Simplify = 0.001

	log.Info("Baking...")
	target := bake.NewMemoryTarget()
	res, status, err := bake.New().Bake(ctx, cfg, []clip.Source{walk, bounce}, target)
	if err != nil {
		log.Fatalf("bake failed. err='%v'", err)
	}

	fmt.Printf("rate  %s\n", preview.Strip(res.Preview.Rate, 72))
	fmt.Printf("phase %s\n", preview.Strip(res.Preview.Phase, 72))

	f, err := os.Create(previewFile)
	if err != nil {
		log.Fatalf("could not create %s. err='%v'", previewFile, err)
	}
	defer f.Close()
	if err := preview.Chart(res.Preview, "loopbake demo", f); err != nil {
		log.Fatalf("could not render preview. err='%v'", err)
	}

	log.Infof("Baked %d frames across %d loops (%d channels, %d keys simplified away) in %s",
		status.FramesCommitted, len(res.Assignments), len(res.Channels), status.KeysRemoved, status.Elapsed)
	log.Infof("Preview written to %s", previewFile)
}
