package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/seqsense/glfx/camera"
	"github.com/seqsense/glfx/effect"
	"github.com/seqsense/glfx/mat"
)

const (
	moveStep = 0.05
	turnStep = 0.02
	minFOV   = math.Pi / 8
	maxFOV   = math.Pi * 2 / 3

	pickRatio = 0.01
)

type viewer struct {
	scene    *scene
	orbit    *camera.Orbit
	wheel    camera.WheelNormalizer
	click    camera.ClickGuard
	matrices *effect.Matrices

	width, height  int
	pressX, pressY int
}

func newViewer(s *scene, ortho bool) *viewer {
	o := camera.NewOrbit()
	if ortho {
		o.Projection = camera.ProjectionOrthographic
	}
	return &viewer{
		scene:    s,
		orbit:    o,
		matrices: effect.NewMatrices(),
		width:    1280,
		height:   720,
	}
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	for b, btn := range map[ebiten.MouseButton]camera.Button{
		ebiten.MouseButtonLeft:   camera.ButtonLeft,
		ebiten.MouseButtonMiddle: camera.ButtonMiddle,
		ebiten.MouseButtonRight:  camera.ButtonRight,
	} {
		e := camera.DragEvent{X: float64(x), Y: float64(y), Button: btn}
		switch {
		case inpututil.IsMouseButtonJustPressed(b) && !v.orbit.Dragging():
			v.orbit.DragStart(e)
			v.click.DragStart()
			v.pressX, v.pressY = x, y
		case inpututil.IsMouseButtonJustReleased(b) && v.orbit.Dragging():
			v.orbit.DragEnd(e)
			v.click.DragEnd()
			if btn == camera.ButtonLeft && v.click.Click() {
				v.recenter(float64(x), float64(y))
			}
		}
	}
	if v.orbit.Dragging() && (x != v.pressX || y != v.pressY) {
		v.click.Move()
	}
	v.orbit.Drag(camera.DragEvent{X: float64(x), Y: float64(y)})

	if _, dy := ebiten.Wheel(); dy != 0 {
		// ebiten reports wheel up as positive
		if d, ok := v.wheel.Normalize(-dy); ok {
			v.orbit.Zoom(d)
		}
	}

	for key, move := range map[ebiten.Key][3]float64{
		ebiten.KeyW: {moveStep, 0, 0},
		ebiten.KeyA: {0, moveStep, 0},
		ebiten.KeyS: {-moveStep, 0, 0},
		ebiten.KeyD: {0, -moveStep, 0},
		ebiten.KeyQ: {0, 0, turnStep},
		ebiten.KeyE: {0, 0, -turnStep},
	} {
		if ebiten.IsKeyPressed(key) {
			s := math.Max(v.orbit.Distance, 1)
			v.orbit.Move(move[0]*s, move[1]*s, move[2])
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		v.orbit.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		v.orbit.FPS()
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		v.orbit.SnapYaw()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.orbit.SnapPitch()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if v.orbit.Projection == camera.ProjectionOrthographic {
			v.orbit.Projection = camera.ProjectionPerspective
		} else {
			v.orbit.Projection = camera.ProjectionOrthographic
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		v.orbit.FOV = math.Min(v.orbit.FOV+math.Pi/16, maxFOV)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackslash):
		v.orbit.FOV = math.Max(v.orbit.FOV-math.Pi/16, minFOV)
	}
	return nil
}

// recenter moves the orbit target onto the clicked point.
func (v *viewer) recenter(x, y float64) {
	vp := v.orbit.View().Mul(v.orbit.ProjectionMatrix(float64(v.width), float64(v.height)))
	p, ok := v.scene.pick(vp, x, y, float64(v.width), float64(v.height), pickRatio*float32(math.Max(v.orbit.Distance, 1)))
	if !ok {
		return
	}
	v.orbit.X, v.orbit.Y = float64(p.X), float64(p.Y)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.matrices.SetView(v.orbit.View())
	v.matrices.SetProjection(v.orbit.ProjectionMatrix(float64(v.width), float64(v.height)))
	vp := v.matrices.ViewProjection()
	w, h := float32(v.width), float32(v.height)

	for _, s := range v.scene.segments {
		x0, y0, ok0 := toScreen(s.a, vp, w, h)
		x1, y1, ok1 := toScreen(s.b, vp, w, h)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, s.c, true)
	}
	for _, p := range v.scene.points {
		if x, y, ok := toScreen(mat.FromVec3(p), vp, w, h); ok {
			vector.DrawFilledRect(screen, x, y, 1, 1, colorPt, false)
		}
	}

	eye := v.matrices.EyePosition()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"eye (%.2f, %.2f, %.2f) yaw %.2f pitch %.2f distance %.1f\n%.0f fps",
		eye.X, eye.Y, eye.Z, v.orbit.Yaw, v.orbit.Pitch, v.orbit.Distance, ebiten.ActualFPS(),
	))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
