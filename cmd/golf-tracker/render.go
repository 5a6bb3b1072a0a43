package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	scorecardservice "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/application"
	"github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/courses"
	scorecardtypes "github.com/Black-And-White-Club/golf-tracker/app/modules/scorecard/domain/types"
	statsservice "github.com/Black-And-White-Club/golf-tracker/app/modules/statistics/application"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printPlayers(w io.Writer, players []scorecardtypes.Player) {
	if len(players) == 0 {
		fmt.Fprintln(w, "No players registered.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "NAME\tHANDICAP\tID")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, formatHandicap(p.Handicap), p.ID)
	}
	tw.Flush()
}

func formatHandicap(h *float64) string {
	if h == nil {
		return "-"
	}
	return strconv.FormatFloat(*h, 'f', 1, 64)
}

func formatToPar(v int) string {
	switch {
	case v == 0:
		return "E"
	case v > 0:
		return "+" + strconv.Itoa(v)
	default:
		return strconv.Itoa(v)
	}
}

// printScorecard prints the hole grid: hole numbers, pars, strokes and the
// running score against par.
func printScorecard(w io.Writer, v scorecardservice.ScorecardView) {
	status := "in progress"
	if v.Card.Completed {
		status = "completed"
	}
	fmt.Fprintf(w, "Round %s\n", v.Card.RoundID)
	fmt.Fprintf(w, "Player: %s  Course: %s  Date: %s  (%s)\n",
		v.Player.Name, v.Card.Course, v.Card.PlayedOn.Format(dateLayout), status)

	tw := newTable(w)
	holes := []string{"Hole"}
	pars := []string{"Par"}
	strokes := []string{"Strokes"}
	running := []string{"To par"}
	toPar := 0
	for i, par := range v.Card.Pars {
		holes = append(holes, strconv.Itoa(i+1))
		pars = append(pars, strconv.Itoa(par))
		if s := v.Card.Strokes[i]; s > 0 {
			toPar += s - par
			strokes = append(strokes, strconv.Itoa(s))
			running = append(running, formatToPar(toPar))
		} else {
			strokes = append(strokes, "-")
			running = append(running, "")
		}
	}
	for _, row := range [][]string{holes, pars, strokes, running} {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	total := fmt.Sprintf("Total: %d (par %d", v.Total, v.TotalPar)
	if v.ToPar != nil {
		total += ", " + formatToPar(*v.ToPar)
	}
	fmt.Fprintf(w, "%s) %d/%d holes recorded\n", total, v.RecordedHoles, len(v.Card.Pars))
}

func printScorecardList(w io.Writer, views []scorecardservice.ScorecardView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No scorecards found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tPLAYER\tCOURSE\tHOLES\tTOTAL\tTO PAR\tSTATUS\tROUND ID")
	for _, v := range views {
		toPar := "-"
		if v.ToPar != nil {
			toPar = formatToPar(*v.ToPar)
		}
		status := "open"
		if v.Card.Completed {
			status = "completed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d\t%s\t%s\t%s\n",
			v.Card.PlayedOn.Format(dateLayout), v.Player.Name, v.Card.Course,
			v.RecordedHoles, len(v.Card.Pars), v.Total, toPar, status, v.Card.RoundID)
	}
	tw.Flush()
}

func printCourses(w io.Writer, names []string) {
	tw := newTable(w)
	fmt.Fprintln(tw, "COURSE\tHOLES\tPAR\tLAYOUT")
	for _, name := range names {
		layout := courses.Lookup(name, 0)
		par := 0
		for _, p := range layout.Pars {
			par += p
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", layout.Name, len(layout.Pars), par, joinInts(layout.Pars))
	}
	tw.Flush()
}

func printStatistics(w io.Writer, stats scorecardservice.PlayerStatistics) {
	s := stats.Summary
	fmt.Fprintf(w, "Statistics for %s\n", stats.Player.Name)
	if !s.HasRounds() {
		fmt.Fprintf(w, "No completed rounds (%d recorded in total).\n", s.TotalRounds)
		return
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "Rounds\t%d (%d completed)\n", s.TotalRounds, s.CompletedRounds)
	fmt.Fprintf(tw, "Total strokes\t%d\n", s.TotalStrokes)
	fmt.Fprintf(tw, "Average score\t%.2f\n", s.AverageStrokes)
	fmt.Fprintf(tw, "Best round\t%s\n", formatRound(s.Best))
	fmt.Fprintf(tw, "Worst round\t%s\n", formatRound(s.Worst))
	fmt.Fprintf(tw, "Total under par\t%d\n", s.TotalUnderPar)
	fmt.Fprintf(tw, "Total over par\t%d\n", s.TotalOverPar)
	fmt.Fprintf(tw, "Eagles or better\t%d\n", s.Eagles)
	fmt.Fprintf(tw, "Birdies\t%d\n", s.Birdies)
	fmt.Fprintf(tw, "Pars\t%d\n", s.Pars)
	fmt.Fprintf(tw, "Bogeys\t%d\n", s.Bogeys)
	fmt.Fprintf(tw, "Double bogeys or worse\t%d\n", s.DoubleBogeys)
	fmt.Fprintf(tw, "Best hole\t%s\n", formatHole(s.BestHole))
	fmt.Fprintf(tw, "Worst hole\t%s\n", formatHole(s.WorstHole))
	fmt.Fprintf(tw, "Consistency (std dev)\t%.2f\n", s.Consistency)
	tw.Flush()

	if len(s.HoleAverages) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "HOLE\tROUNDS\tAVG STROKES\tAVG TO PAR")
	for _, h := range s.HoleAverages {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%+.2f\n", h.Hole, h.Rounds, h.AverageStrokes, h.AverageToPar)
	}
	tw.Flush()
}

func formatRound(r statsservice.RoundTotal) string {
	return fmt.Sprintf("%d (%s) at %s on %s", r.Strokes, formatToPar(r.ToPar), r.Course, r.PlayedOn.Format(dateLayout))
}

func formatHole(h statsservice.HoleAverage) string {
	return fmt.Sprintf("#%d, %.2f strokes (%+.2f)", h.Hole, h.AverageStrokes, h.AverageToPar)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
