package main

import (
	"fmt"
	"runtime"
	"time"

	orrery "github.com/Mai2117/Sun-Earth-Moon"
	"github.com/Mai2117/Sun-Earth-Moon/camera"
	"github.com/Mai2117/Sun-Earth-Moon/render"
	"github.com/Mai2117/Sun-Earth-Moon/shaders"
	"github.com/dustin/go-humanize"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	kitlog "github.com/go-kit/kit/log"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

var cameraKeys = map[glfw.Key]camera.Movement{
	glfw.KeyW: camera.Forward,
	glfw.KeyS: camera.Backward,
	glfw.KeyA: camera.Left,
	glfw.KeyD: camera.Right,
}

func runWindow(conf orrery.Config, logger kitlog.Logger) error {
	sim, err := orrery.NewSimulation(conf, logger)
	if err != nil {
		return err
	}

	win, err := render.NewWindow(conf.Window)
	if err != nil {
		return err
	}
	defer win.Release()

	prog, err := render.NewProgramFromFiles(conf.Assets.VertexShader, conf.Assets.FragmentShader, shaders.Vertex, shaders.Fragment)
	if err != nil {
		return fmt.Errorf("shader program: %w", err)
	}
	defer prog.Delete()

	textures := map[orrery.TextureSlot]string{
		orrery.TextureSun:   conf.Assets.SunTexture,
		orrery.TextureEarth: conf.Assets.EarthTexture,
		orrery.TextureMoon:  conf.Assets.MoonTexture,
	}
	rend := render.NewRenderer(textures, []*orrery.OrbitPath{sim.EarthPath, sim.MoonPath}, float32(conf.Window.LineWidth), logger)
	defer rend.Release()

	p := conf.Camera.Position
	cam := camera.New(mgl32.Vec3{float32(p[0]), float32(p[1]), float32(p[2])}, float32(conf.Camera.Speed), float32(conf.Camera.Sensitivity))
	win.OnCursor(cam.CursorMoved)

	mapper := orrery.NewMapper(orrery.DefaultBindings())
	scene := sim.Scene(conf.Tints())
	background := conf.Background()
	fov := mgl32.DegToRad(float32(conf.Window.FOV))

	logger.Log("level", "info", "subsys", "render", "status", "started", "width", conf.Window.Width, "height", conf.Window.Height)
	started := time.Now()
	last := win.Time()
	for !win.ShouldClose() {
		now := win.Time()
		dt := now - last
		last = now

		for key, move := range cameraKeys {
			if win.Held(key) {
				cam.ProcessKeyboard(move, float32(dt))
			}
		}
		frame := sim.Step(dt, mapper.Poll(win.Pressed)...)
		if sim.Quit() {
			win.Close()
		}
		if conf.Camera.Follow != "" {
			// Checked by Validate.
			target, _ := frame.Positions.Of(conf.Camera.Follow)
			cam.Follow(mgl32.Vec3{float32(target.X), float32(target.Y), float32(target.Z)})
		}

		rend.Clear(background)
		view := orrery.View{
			View:       cam.ViewMatrix(),
			Projection: mgl32.Perspective(fov, win.Aspect(), float32(conf.Window.Near), float32(conf.Window.Far)),
			Position:   cam.Position,
		}
		orrery.Emit(prog, rend, view, scene.Compose(frame))
		win.SwapAndPoll()
	}

	logger.Log("level", "notice", "subsys", "render", "status", "finished",
		"frames", humanize.Comma(int64(sim.Frames())),
		"orbits", sim.Calendar.Orbits(sim.State.Clock.Elapsed),
		"duration", time.Since(started).Round(time.Second),
		"simulated", humanize.RelTime(sim.Calendar.Epoch, sim.Calendar.Date(sim.State.Clock.Elapsed), "earlier", "later"))
	return nil
}
