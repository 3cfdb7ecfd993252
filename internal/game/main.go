package game

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockman/internal/config"
	"blockman/internal/logger"
	"blockman/internal/sim"
)

// Run opens the window and drives the frame loop until the window closes.
// Reloaded configs arriving on updates retune the camera, animation speed
// and volume; updates may be nil.
func Run(cfg *config.Config, updates <-chan *config.Config) error {
	runtime.LockOSThread()
	log := logger.L().With("component", "game")

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(ClearGray, ClearGray, ClearGray, 1.0)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.LoadSkins()
	if err := rend.InitHUD(); err != nil {
		return fmt.Errorf("hud: %w", err)
	}

	state := sim.NewState()
	if skin, err := cfg.StartSkin(); err == nil {
		state.Skin = skin
	}
	state.Tune(cfg.CameraState(), cfg.Animation.Step)

	var audio *Audio
	if cfg.Audio.Enabled {
		audio, err = NewAudio(cfg.Audio.Volume)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", "err", err)
			audio = nil
		}
	}
	subscribeEvents(state, audio, log)
	BindKeyboard(window, state)

	stack := sim.NewTransformStack()
	diag := sim.NewDiagnostics(sim.DiagnosticsInterval)
	var calls []sim.DrawCall

	last := time.Now()
	for !window.ShouldClose() {
		frameStart := time.Now()
		if stall := frameStart.Sub(last); stall > MaxFrameStall {
			log.Debug("slow frame", "elapsed", stall)
		}
		last = frameStart

		glfw.PollEvents()
		applyUpdates(updates, state, audio, log)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			// Minimized: keep polling without advancing the simulation.
			time.Sleep(TargetFrameTime)
			continue
		}

		state.Step()

		rend.BeginFrame(fbW, fbH)
		calls, err = sim.Compose(calls[:0], stack, state)
		if err != nil {
			log.Error("frame aborted", "err", err)
		} else {
			proj := state.Camera.Projection(float32(fbW) / float32(fbH))
			rend.DrawScene(calls, state.Skin, proj)
		}

		readout, fresh := diag.Sample(time.Now(), state)
		if fresh {
			log.Debug("diagnostics",
				"position", readout.Position,
				"heading", readout.Heading,
				"angle", readout.CameraAngle,
				"distance", readout.CameraDistance,
				"speed", readout.Speed)
		}
		rend.DrawHUD(readout, state.Skin, fbW, fbH)

		window.SwapBuffers()

		if !cfg.Window.VSync {
			if d := TargetFrameTime - time.Since(frameStart); d > 0 {
				time.Sleep(d)
			}
		}
	}
	return nil
}

// applyUpdates drains pending config reloads without blocking the frame.
func applyUpdates(updates <-chan *config.Config, state *sim.State, audio *Audio, log *slog.Logger) {
	for {
		select {
		case cfg, ok := <-updates:
			if !ok || cfg == nil {
				return
			}
			state.Tune(cfg.CameraState(), cfg.Animation.Step)
			if audio != nil {
				audio.SetVolume(cfg.Audio.Volume)
			}
			log.Info("config reloaded",
				"angle", state.Camera.Angle,
				"distance", state.Camera.Distance,
				"step", state.Anim.Step)
		default:
			return
		}
	}
}

func subscribeEvents(state *sim.State, audio *Audio, log *slog.Logger) {
	left := true
	state.Events.Subscribe(sim.EventFootstep, func(sim.Event) {
		if left {
			audio.Play(SoundStepLeft)
		} else {
			audio.Play(SoundStepRight)
		}
		left = !left
	})
	state.Events.Subscribe(sim.EventSkinToggled, func(e sim.Event) {
		log.Info("skin toggled", "skin", sim.Skin(e.Value).String())
		audio.Play(SoundToggle)
	})
	state.Events.Subscribe(sim.EventTuningChanged, func(sim.Event) {
		log.Debug("tuning changed",
			"angle", state.Camera.Angle,
			"distance", state.Camera.Distance,
			"step", state.Anim.Step)
		audio.Play(SoundTick)
	})
}
