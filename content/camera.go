package content

import (
	"fmt"

	"github.com/seqsense/glfx/mat"
)

// Projection builds the projection matrix with depth range [0, 1].
// aspect is used when the camera doesn't specify its own.
func (c *Camera) Projection(aspect float32) (mat.Matrix, error) {
	switch c.Type {
	case CameraPerspective:
		p := c.Perspective
		if p == nil {
			return mat.Matrix{}, fmt.Errorf("%w: perspective parameters missing", ErrCamera)
		}
		if p.AspectRatio != nil {
			aspect = *p.AspectRatio
		}
		switch {
		case aspect <= 0:
			return mat.Matrix{}, fmt.Errorf("%w: aspect ratio %f", ErrCamera, aspect)
		case p.YFov <= 0 || p.YFov >= mat.Pi:
			return mat.Matrix{}, fmt.Errorf("%w: yfov %f", ErrCamera, p.YFov)
		case p.ZFar == nil:
			return mat.Matrix{}, fmt.Errorf("%w: infinite projection is not supported", ErrCamera)
		case p.ZNear <= 0 || *p.ZFar <= p.ZNear:
			return mat.Matrix{}, fmt.Errorf("%w: depth range [%f, %f]", ErrCamera, p.ZNear, *p.ZFar)
		}
		return mat.PerspectiveFieldOfView(p.YFov, aspect, p.ZNear, *p.ZFar), nil

	case CameraOrthographic:
		o := c.Orthographic
		if o == nil {
			return mat.Matrix{}, fmt.Errorf("%w: orthographic parameters missing", ErrCamera)
		}
		switch {
		case o.XMag == 0 || o.YMag == 0:
			return mat.Matrix{}, fmt.Errorf("%w: magnification (%f, %f)", ErrCamera, o.XMag, o.YMag)
		case o.ZNear < 0 || o.ZFar <= o.ZNear:
			return mat.Matrix{}, fmt.Errorf("%w: depth range [%f, %f]", ErrCamera, o.ZNear, o.ZFar)
		}
		return mat.Orthographic(2*o.XMag, 2*o.YMag, o.ZNear, o.ZFar), nil

	default:
		return mat.Matrix{}, fmt.Errorf("%w: unknown type %q", ErrCamera, c.Type)
	}
}
