// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders vote tallies and guest messages as plain-text tables.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/celebrate/models"
)

// Percent returns count as a whole-number share of total, rounded half away from zero.
// A zero total yields 0.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

// WriteResults prints each activity with one row per option.
func WriteResults(w io.Writer, results []models.ActivityResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%d. %s (%s votes)\n", r.Order, r.Question, humanize.Comma(int64(r.TotalVotes)))
		for _, vc := range r.VoteCounts {
			fmt.Fprintf(tw, "\t%s\t%s\t%d%%\n", vc.OptionText, humanize.Comma(int64(vc.VoteCount)), Percent(vc.VoteCount, r.TotalVotes))
		}
	}

	return tw.Flush()
}

// WriteMessages prints messages oldest first with relative timestamps.
func WriteMessages(w io.Writer, messages []models.Message, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "USER\tWHEN\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", m.UserID, humanize.RelTime(m.CreatedAt, now, "ago", "from now"), m.MessageText)
	}

	return tw.Flush()
}
