package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/aquadrift/internal/application/game"
	"github.com/younwookim/aquadrift/internal/application/replay"
	"github.com/younwookim/aquadrift/internal/application/scene/playing"
	"github.com/younwookim/aquadrift/internal/application/system"
	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/asset"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
	"github.com/younwookim/aquadrift/internal/infrastructure/settings"
	"github.com/younwookim/aquadrift/internal/infrastructure/watch"
)

const (
	appName        = "aquadrift"
	defaultDataDir = "cmd/game/configs"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	levelFlag := flag.String("level", "levels/lvl1.txt", "Level file (.txt or .tmx) relative to the data directory")
	dirFlag := flag.String("dir", "", "Read configs, assets and levels from this directory instead of the embedded copy")
	watchFlag := flag.Bool("watch", false, "Reload the level when its file changes (reads from -dir, default "+defaultDataDir+")")
	binds := bindFlag{}
	flag.Var(binds, "bind", "Rebind an action and save it, e.g. -bind jump=Space,K (repeatable)")
	flag.Parse()

	dataDir := *dirFlag
	if *watchFlag && dataDir == "" {
		dataDir = defaultDataDir
	}

	fsys, err := dataFS(dataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	loader := config.NewFSLoader(fsys, dataDir)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	clips, err := asset.Load(fsys, cfg.Animations)
	if err != nil {
		log.Fatalf("Failed to load animations: %v", err)
	}

	var replayData *replay.ReplayData
	if *replayFlag != "" {
		replayData, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
	}

	levelName := *levelFlag
	if replayData != nil && replayData.Level != "" {
		levelName = replayData.Level
	}
	loadLevel := func() *entity.Level {
		src := system.LoadLevelSource(fsys, levelName)
		return system.LoadLevel(src, cfg.Physics.Level, cfg.Entities.Hazard)
	}

	store, err := settings.Open(appName)
	if err != nil {
		log.Printf("Key bindings will not persist: %v", err)
		store = nil
	}
	bindings, err := resolveBindings(store, binds)
	if err != nil {
		log.Fatalf("%v", err)
	}

	opts := playing.Options{
		LevelName:  levelName,
		LoadLevel:  loadLevel,
		Bindings:   bindings,
		RecordPath: *recordFlag,
		Replay:     replayData,
	}

	if *watchFlag {
		w, err := watch.New(filepath.Join(dataDir, path.Dir(levelName)))
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		defer func() { _ = w.Close() }()
		opts.Watcher = w
		log.Printf("Watching %s for changes", filepath.Join(dataDir, levelName))
	}

	scene, err := playing.New(cfg, clips, loadLevel(), opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Physics.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)
	if replayData != nil && replayData.DT > 0 {
		g.SetDT(replayData.DT)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Aqua Drift")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// dataFS returns the embedded configs, or dir on disk when set
func dataFS(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(configFS, "configs")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}
