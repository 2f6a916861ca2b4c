package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/kamstrup/intmap"
)

type runStats struct {
	runIndex int
	seed     int64
	report   breakout.RunReport
	grade    breakout.RunGrade
}

func main() {
	os.Exit(Main())
}

func Main() int {
	runs := flag.Int("runs", 5, "number of headless autoplay runs")
	ticks := flag.Int("ticks", 36000, "tick limit per run")
	seedBase := flag.Int64("seed-base", 42, "base RNG seed for run 1")
	seedStep := flag.Int64("seed-step", 1, "seed increment between runs")
	variantFlag := flag.String("variant", "assisted", "game variant: classic or assisted")
	tuning := flag.String("config", "", "optional TOML `file` overriding the variant's tunables")
	cli.Main()

	if *runs <= 0 {
		return log.FErrf("-runs must be > 0, got %d", *runs)
	}
	if *ticks <= 0 {
		return log.FErrf("-ticks must be > 0, got %d", *ticks)
	}
	variant, err := breakout.ParseVariant(*variantFlag)
	if err != nil {
		return log.FErrf("%v", err)
	}
	cfg := breakout.ConfigFor(variant)
	if *tuning != "" {
		cfg, err = breakout.LoadConfig(*tuning, cfg)
		if err != nil {
			return log.FErrf("%v", err)
		}
		log.Infof("Loaded tuning from %s", *tuning)
	}

	fmt.Printf("=== Headless Autoplay Report ===\n")
	fmt.Printf("variant=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", variant, *runs, *ticks, *seedBase, *seedStep)

	all := make([]runStats, 0, *runs)
	for i := 0; i < *runs; i++ {
		seed := *seedBase + int64(i)*(*seedStep)
		rs := autoplay(i+1, seed, *ticks, cfg)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all, cfg)
	return 0
}

// autoplay runs one game with the AI holding the paddle until it ends or
// the tick limit is reached.
func autoplay(runIndex int, seed int64, ticks int, cfg breakout.Config) runStats {
	ts := breakout.NewTestSim(
		breakout.WithConfig(cfg),
		breakout.WithAI(true),
		breakout.WithSeed(seed),
		breakout.WithReporter(),
	)
	ts.RunTicks(ticks)
	log.Debugf("run %d: %d log entries", runIndex, len(ts.SimLog.Entries()))
	r := ts.Reporter.Report()
	return runStats{runIndex: runIndex, seed: seed, report: r, grade: breakout.GradeRun(r)}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Print(rs.report.Format())
	fmt.Println(rs.grade.Format())
	fmt.Println()
}

// slotCounts tallies how often each brick slot was broken across runs.
func slotCounts(all []runStats) *intmap.Map[int, int] {
	counts := intmap.New[int, int](64)
	for _, rs := range all {
		for _, slot := range rs.report.DestroyOrder {
			n, _ := counts.Get(slot)
			counts.Put(slot, n+1)
		}
	}
	return counts
}

// firstBrickHistogram counts which slot went first in each run.
func firstBrickHistogram(all []runStats) *intmap.Map[int, int] {
	first := intmap.New[int, int](len(all))
	for _, rs := range all {
		if len(rs.report.DestroyOrder) == 0 {
			continue
		}
		slot := rs.report.DestroyOrder[0]
		n, _ := first.Get(slot)
		first.Put(slot, n+1)
	}
	return first
}

// survivors lists slots that no run ever broke, in ascending order.
func survivors(counts *intmap.Map[int, int], total int) []int {
	var out []int
	for slot := 0; slot < total; slot++ {
		if _, ok := counts.Get(slot); !ok {
			out = append(out, slot)
		}
	}
	return out
}

func outcomeCounts(all []runStats) (wins, losses, unfinished int) {
	for _, rs := range all {
		switch rs.report.Outcome {
		case breakout.OutcomeWin:
			wins++
		case breakout.OutcomeGameOver:
			losses++
		default:
			unfinished++
		}
	}
	return wins, losses, unfinished
}

func printAggregate(all []runStats, cfg breakout.Config) {
	totalScore, totalTicks, totalHits, totalBoosts := 0, 0, 0, 0
	winTicks := make([]int, 0, len(all))
	maxSpeed, gradeSum := 0.0, 0.0
	traits := map[string]int{}
	for _, rs := range all {
		r := rs.report
		gradeSum += rs.grade.Score
		for _, tr := range rs.grade.Traits {
			traits[tr]++
		}
		totalScore += r.Score
		totalTicks += r.Ticks
		totalHits += r.PaddleHits
		totalBoosts += r.SpeedBoosts
		if r.MaxSpeed > maxSpeed {
			maxSpeed = r.MaxSpeed
		}
		if r.Outcome == breakout.OutcomeWin {
			winTicks = append(winTicks, r.Ticks)
		}
	}
	wins, losses, unfinished := outcomeCounts(all)

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins=%d game_overs=%d unfinished=%d\n", len(all), wins, losses, unfinished)
	fmt.Printf("avg_per_run: score=%.1f ticks=%.1f paddle_hits=%.1f boosts=%.1f\n",
		avg(totalScore, len(all)), avg(totalTicks, len(all)), avg(totalHits, len(all)), avg(totalBoosts, len(all)))
	fmt.Printf("max_ball_speed=%.2f avg_ticks_to_win=%s\n", maxSpeed, avgTickString(winTicks))
	avgGrade := gradeSum / float64(len(all))
	fmt.Printf("avg_grade=%s (%.1f) traits=[%s]\n", breakout.LetterGrade(avgGrade), avgGrade, topTraits(traits))

	counts := slotCounts(all)
	total := cfg.BrickRows * cfg.BrickCols
	fmt.Printf("slots_hit=%d/%d never_broken=[%s]\n", counts.Len(), total, joinInts(survivors(counts, total)))
	fmt.Printf("first_brick_slots: %s\n", formatHistogram(firstBrickHistogram(all), total))
}

// formatHistogram lists slot:count pairs for slots in [0, total).
func formatHistogram(h *intmap.Map[int, int], total int) string {
	if h.Len() == 0 {
		return "n/a"
	}
	parts := make([]string, 0, h.Len())
	for slot := 0; slot < total; slot++ {
		if n, ok := h.Get(slot); ok {
			parts = append(parts, fmt.Sprintf("%d:%d", slot, n))
		}
	}
	return strings.Join(parts, " ")
}

// topTraits lists traits by descending count, ties by name.
func topTraits(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s(%d)", n, counts[n])
	}
	return strings.Join(parts, ", ")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
