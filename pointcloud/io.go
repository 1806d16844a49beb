package pointcloud

import (
	"fmt"
	"io"
	"os"

	"github.com/seqsense/pcgol/pc"
)

func Load(r io.Reader) (*pc.PointCloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("pointcloud: decoding pcd: %w", err)
	}
	return pp, nil
}

func Save(w io.Writer, pp *pc.PointCloud) error {
	if err := pc.Marshal(pp, w); err != nil {
		return fmt.Errorf("pointcloud: encoding pcd: %w", err)
	}
	return nil
}

func LoadFile(path string) (*pc.PointCloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func SaveFile(path string, pp *pc.PointCloud) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Save(f, pp); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
