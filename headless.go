package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/automoto/deal-closer/assets"
	"github.com/automoto/deal-closer/config"
	"github.com/automoto/deal-closer/scenes"
	"github.com/automoto/deal-closer/systems"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagTicks int
	flagDT    float64
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a scripted match without a window",
	Long: `Simulate a match with scripted input: run right, fire emails
continuously, jump every second and make a call every two seconds.
Sound is disabled. Prints a summary when the match ends or the tick
budget runs out.

Examples:
  deal-closer headless
  deal-closer headless --ticks 7200 --seed 42
  deal-closer headless --dt 0.05   # steps are still capped at 1/60 s`,
	Args: cobra.NoArgs,
	RunE: runHeadless,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the embedded levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := assets.LevelNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	headlessCmd.Flags().IntVar(&flagTicks, "ticks", 60*120, "Maximum ticks to simulate")
	headlessCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60.0, "Seconds per tick")
}

// scriptedInput runs right and holds fire. Jump is held for a single tick once
// a second, which spends one jump, and the call button is tapped every two
// seconds.
func scriptedInput() systems.InputSource {
	tick := 0
	return func() [config.ActionCount]bool {
		var held [config.ActionCount]bool
		held[config.ActionMoveRight] = true
		held[config.ActionFirePrimary] = true
		held[config.ActionJump] = tick%60 == 0
		held[config.ActionFireSecondary] = tick%120 == 30
		tick++
		return held
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout()
	if err != nil {
		return err
	}
	world, err := scenes.NewWorld(scenes.WorldOptions{
		Layout: layout,
		Seed:   seed(),
		Input:  scriptedInput(),
	})
	if err != nil {
		return err
	}

	start := time.Now()
	world.Start()
	ticks := 0
	for ; ticks < flagTicks; ticks++ {
		world.Step(flagDT)
		if world.Snapshot().State == config.MatchStateGameOver {
			ticks++
			break
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(world.Snapshot(), ticks, time.Since(start)))
	return nil
}

var (
	summaryBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#64748b")).
		Padding(0, 2)
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	summaryKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Width(12)
	summaryWin   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	summaryLoss  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

func renderSummary(snap systems.Snapshot, ticks int, wall time.Duration) string {
	result := "In progress"
	style := lipgloss.NewStyle()
	if snap.State == config.MatchStateGameOver {
		if snap.Victory {
			result, style = "Deal Closed!", summaryWin
		} else {
			result, style = "Deal Lost", summaryLoss
		}
	}

	rows := [][2]string{
		{"Result", style.Render(result)},
		{"Score", systems.FormatScore(snap.Score)},
		{"Health", fmt.Sprintf("%d / %d", snap.Health, snap.MaxHealth)},
		{"Calls left", fmt.Sprintf("%d", snap.CallAmmo)},
		{"Enemies", fmt.Sprintf("%d active", snap.ActiveEnemies)},
		{"Sim time", fmt.Sprintf("%.2fs over %d ticks", snap.Clock, ticks)},
		{"Wall time", wall.Round(time.Millisecond).String()},
	}
	if snap.BossVisible {
		rows = append(rows, [2]string{"Boss", fmt.Sprintf("%.0f%% health", snap.BossHealthFraction*100)})
	}

	var b strings.Builder
	b.WriteString(summaryTitle.Render("DEAL CLOSER - headless run"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(summaryKey.Render(row[0]))
		b.WriteString(row[1])
	}
	return summaryBox.Render(b.String())
}
