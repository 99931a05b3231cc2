package main

import (
	"flag"

	"github.com/bloeys/scp087/config"
	"github.com/bloeys/scp087/engine"
	"github.com/bloeys/scp087/game"
	"github.com/bloeys/scp087/logging"
	"github.com/bloeys/scp087/renderer/rend3dgl"
)

const presetName = "blinddate"

func main() {

	configPath := flag.String("config", "", "Path to a yaml file overriding the blinddate preset")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load config. Err:", err)
	}

	//Init engine
	err = engine.Init()
	if err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	//Create window
	window, err := engine.CreateOpenGLWindowCentered(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, engine.WindowFlags_RESIZABLE, rend3dgl.NewRend3DGL())
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer window.Destroy()

	if cfg.Window.Fullscreen {
		if err := window.SetFullscreenDesktop(true); err != nil {
			logging.WarnLog.Println("Failed to go fullscreen, staying windowed. Err:", err)
		}
	}

	engine.SetMSAA(cfg.Window.MSAA)
	engine.SetVSync(cfg.Window.VSync)
	engine.SetSrgbFramebuffer(true)
	engine.SetTargetFPS(cfg.Window.TargetFPS)

	g, err := game.New(cfg, window)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to load blinddate. Err:", err)
	}

	engine.Run(g, window)
}

func loadConfig(path string) (*config.Demo, error) {

	if path == "" {
		return config.Preset(presetName)
	}

	cfg, err := config.Load(path, presetName)
	if err != nil {
		return nil, err
	}

	logging.InfoLog.Printf("Loaded %s over the %s preset\n", path, presetName)
	return cfg, nil
}
