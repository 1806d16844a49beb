package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seqsense/glfx/content"
	"github.com/seqsense/glfx/pointcloud"
)

// exitCode is the status of every failure, usage errors included.
const exitCode = 1

func main() {
	var (
		mode       = flag.String("mode", "inspect", "inspect|decompose|transform|align.")
		docPath    = flag.String("content", "", "Content document (.gltf, .json, .yaml).")
		matrix     = flag.String("matrix", "", "16 comma separated numbers in storage order (decompose mode).")
		aspect     = flag.Float64("aspect", 16.0/9.0, "Aspect ratio for cameras without their own.")
		node       = flag.Int("node", 0, "Node whose world transform is applied (transform mode).")
		inPath     = flag.String("in", "", "Input PCD (transform mode), target PCD (align mode).")
		basePath   = flag.String("base", "", "Base PCD (align mode).")
		outPath    = flag.String("out", "", "Output PCD (transform mode).")
		resolution = flag.Float64("downsample", 0, "Voxel size to downsample the output with (0 = off).")
		crop       = flag.String("crop", "", "Box min and max as 6 comma separated numbers to keep points in (transform mode).")
	)
	flag.Parse()

	var err error
	switch strings.ToLower(*mode) {
	case "inspect":
		if *docPath == "" {
			fatalf("usage: glfxmat -mode inspect -content scene.gltf [-aspect 1.78]")
		}
		err = inspect(*docPath, float32(*aspect))
	case "decompose":
		if *matrix == "" {
			fatalf("usage: glfxmat -mode decompose -matrix m11,m12,...,m44")
		}
		err = decompose(*matrix)
	case "transform":
		if *docPath == "" || *inPath == "" || *outPath == "" {
			fatalf("usage: glfxmat -mode transform -content scene.gltf -node 0 -in in.pcd -out out.pcd [-downsample 0.1] [-crop x0,y0,z0,x1,y1,z1]")
		}
		err = transform(*docPath, *node, *inPath, *outPath, float32(*resolution), *crop)
	case "align":
		if *basePath == "" || *inPath == "" {
			fatalf("usage: glfxmat -mode align -base base.pcd -in target.pcd [-downsample 0.1]")
		}
		err = align(*basePath, *inPath, float32(*resolution))
	default:
		fatalf("unknown mode: %s", *mode)
	}
	if err != nil {
		fatalf("%s: %v", *mode, err)
	}
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(exitCode)
}

func inspect(path string, aspect float32) error {
	doc, err := content.Load(path)
	if err != nil {
		return err
	}
	r, err := newReport(doc, aspect)
	if err != nil {
		return err
	}
	return r.write(os.Stdout)
}

func decompose(s string) error {
	m, err := parseMatrix(s)
	if err != nil {
		return err
	}
	return newTRS(m).write(os.Stdout)
}

func transform(docPath string, node int, inPath, outPath string, resolution float32, crop string) error {
	var box *pointcloud.Box
	if crop != "" {
		b, err := parseBox(crop)
		if err != nil {
			return err
		}
		box = &b
	}
	doc, err := content.Load(docPath)
	if err != nil {
		return err
	}
	world, err := doc.WorldTransforms()
	if err != nil {
		return err
	}
	if node < 0 || node >= len(world) {
		return fmt.Errorf("node %d: %w", node, content.ErrNodeIndex)
	}
	pp, err := pointcloud.LoadFile(inPath)
	if err != nil {
		return err
	}
	if pp, err = pointcloud.Transform(pp, world[node]); err != nil {
		return err
	}
	if box != nil {
		if pp, err = pointcloud.Crop(pp, box.Matrix(), true); err != nil {
			return err
		}
	}
	if resolution > 0 {
		if pp, err = pointcloud.Downsample(pp, resolution); err != nil {
			return err
		}
	}
	return pointcloud.SaveFile(outPath, pp)
}

func align(basePath, targetPath string, resolution float32) error {
	base, err := pointcloud.LoadFile(basePath)
	if err != nil {
		return err
	}
	target, err := pointcloud.LoadFile(targetPath)
	if err != nil {
		return err
	}
	if resolution > 0 {
		if base, err = pointcloud.Downsample(base, resolution); err != nil {
			return err
		}
		if target, err = pointcloud.Downsample(target, resolution); err != nil {
			return err
		}
	}
	itBase, err := base.Vec3Iterator()
	if err != nil {
		return err
	}
	itTarget, err := target.Vec3Iterator()
	if err != nil {
		return err
	}
	m, err := pointcloud.Align(itBase, itTarget, nil)
	if err != nil {
		return err
	}
	return newTRS(m).write(os.Stdout)
}
