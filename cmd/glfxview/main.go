package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seqsense/glfx/content"
	"github.com/seqsense/glfx/pointcloud"
)

func main() {
	var (
		docPath    = flag.String("content", "", "Content document to show node axes of.")
		pcdPath    = flag.String("pcd", "", "Point cloud to show.")
		resolution = flag.Float64("downsample", 0.1, "Voxel size to downsample the point cloud with (0 = off).")
		axis       = flag.Float64("axis", 1, "Length of node axes.")
		ortho      = flag.Bool("ortho", false, "Start with orthographic projection.")
	)
	flag.Parse()

	s, err := load(*docPath, *pcdPath, float32(*resolution), float32(*axis))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("glfxview")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(newViewer(s, *ortho)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func load(docPath, pcdPath string, resolution, axis float32) (*scene, error) {
	s := &scene{}
	s.addGrid(50, 5)
	if docPath != "" {
		doc, err := content.Load(docPath)
		if err != nil {
			return nil, err
		}
		if err := s.addDocument(doc, axis); err != nil {
			return nil, err
		}
	}
	if pcdPath != "" {
		pp, err := pointcloud.LoadFile(pcdPath)
		if err != nil {
			return nil, err
		}
		if resolution > 0 {
			if pp, err = pointcloud.Downsample(pp, resolution); err != nil {
				return nil, err
			}
		}
		it, err := pp.Vec3Iterator()
		if err != nil {
			return nil, err
		}
		s.addPoints(it)
	}
	return s, nil
}
