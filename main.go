// deal-closer is a side-scrolling office action game: close the deal before
// the end of the business day.
//
// Usage:
//
//	deal-closer                 - Play in a window
//	deal-closer headless        - Run a scripted match without a window
//	deal-closer levels          - List the embedded levels
//
// Global flags:
//
//	--seed <value>       - RNG seed for a reproducible match (0 = clock)
//	--config <path>      - Tuning overrides YAML
//	--level <path>       - Embedded level to play
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/deal-closer/assets"
	"github.com/automoto/deal-closer/components"
	"github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/fonts"
	"github.com/automoto/deal-closer/leveldata"
	"github.com/automoto/deal-closer/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagSeed     int64
	flagConfig   string
	flagLevel    string
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.WorldOptions) (*Game, error) {
	ui := config.UI
	if err := fonts.LoadDefaults(ui.HUDFontSize, ui.SmallFontSize, 20, ui.TitleFontSize); err != nil {
		return nil, err
	}

	g := &Game{}
	newMatch := func() (interface{}, error) {
		return scenes.NewPlatformerScene(opts)
	}
	g.scene = scenes.NewMenuScene(g, newMatch)
	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deal-closer",
	Short: "Deal Closer - close the deal before the business day ends",
	Long: `Deal Closer is a side-scroller set in a corporate office district.
Fight declined meetings and finance reviews with emails and phone calls,
then get past the Critical Stakeholder before 10 PM.

Examples:
  deal-closer
  deal-closer --seed 42
  deal-closer headless --ticks 3600 --seed 7
  deal-closer --config ./tuning.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runWindowed,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a tuning overrides YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Embedded level path (default from tuning)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup installs the logger and applies tuning overrides before any command.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "deal-closer",
		Level:           level,
	})
	log.SetDefault(logger)

	path, err := config.LoadOverrides(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("tuning overrides loaded", "path", path)
	}
	return nil
}

// loadLayout reads the level named by --level or the tuning default.
func loadLayout() (*leveldata.Layout, error) {
	path := flagLevel
	if path == "" {
		path = config.Level.Path
	}
	return assets.LoadLevel(path)
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return config.C.Seed
}

func runWindowed(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}

	var backend components.SoundBackend
	if b, err := assets.NewAudioBackend(); err != nil {
		log.Warn("audio disabled", "err", err)
	} else {
		backend = b
	}

	game, err := NewGame(scenes.WorldOptions{
		Layout:  layout,
		Seed:    seed(),
		Backend: backend,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Deal Closer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	return ebiten.RunGame(game)
}
