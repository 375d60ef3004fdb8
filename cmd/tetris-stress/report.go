package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/session"
	"github.com/plus3/tetris/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Gravity  time.Duration
	MaxGames int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          []GameResult
	Unfinished     tetris.Game
	Systems        []session.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameResult is the outcome of one finished game.
type GameResult struct {
	Score tetris.Score
	Stats session.GameStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) AddGame(game tetris.Game, stats session.GameStats) {
	r.Games = append(r.Games, GameResult{Score: game.Score(), Stats: stats})
}

// Totals sums the statistics of every finished game.
func (r *Report) Totals() session.GameStats {
	var total session.GameStats
	for _, g := range r.Games {
		total.Pieces += g.Stats.Pieces
		total.Singles += g.Stats.Singles
		total.Doubles += g.Stats.Doubles
		total.Triples += g.Stats.Triples
		total.Tetrises += g.Stats.Tetrises
		total.BackToBack += g.Stats.BackToBack
		total.HardDrops += g.Stats.HardDrops
	}
	return total
}

func (r *Report) BestScore() int {
	best := 0
	for _, g := range r.Games {
		best = max(best, g.Score.Points)
	}
	return best
}

func (r *Report) MeanScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Score.Points
	}
	return float64(total) / float64(len(r.Games))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Gravity:** {{.Gravity}}
- **Game Limit:** {{if .MaxGames}}{{.MaxGames}}{{else}}none{{end}}

## Games
- **Finished Games:** {{len .Games}}
{{- with .Totals}}
- **Pieces:** {{.Pieces}}
- **Lines:** {{.Lines}} ({{.Singles}} singles, {{.Doubles}} doubles, {{.Triples}} triples, {{.Tetrises}} tetrises)
- **Back-to-Back Tetrises:** {{.BackToBack}}
- **Hard Drops:** {{.HardDrops}}
{{- end}}
- **Best Score:** {{.BestScore}}
- **Mean Score:** {{printf "%.1f" .MeanScore}}
- **Unfinished Game:** {{.Unfinished.Score.Points}} points after {{.Unfinished.Pieces}} pieces

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- range .Systems}}
- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} ({{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB)
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
