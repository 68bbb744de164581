package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"arcade_queue/internal/snapshot"
)

// renderCabinet prints one cabinet: the current session first, then the
// waiting queue in order.
func renderCabinet(w io.Writer, view snapshot.CabinetView) {
	fmt.Fprintf(w, "%s (#%d)\n", view.Name, view.ID)
	if view.CurrentSession == nil {
		fmt.Fprintln(w, "  queue empty")
		return
	}

	rows := make([][]string, 0, len(view.WaitingQueue)+1)
	rows = append(rows, []string{
		"now",
		strconv.FormatUint(uint64(view.CurrentSession.ID), 10),
		string(view.CurrentSession.Type),
		view.CurrentSession.PlayerNames(),
	})
	for i, e := range view.WaitingQueue {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatUint(uint64(e.ID), 10),
			string(e.Type),
			e.PlayerNames(),
		})
	}
	fmt.Fprintln(w, renderTable(w, []string{"Slot", "Entry", "Type", "Players"}, rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft}))
}

func renderCabinets(w io.Writer, views []snapshot.CabinetView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No cabinets")
		return
	}
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCabinet(w, v)
	}
}

// renderSummary prints one line per cabinet.
func renderSummary(w io.Writer, views []snapshot.CabinetView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No cabinets")
		return
	}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		playing := "-"
		if v.CurrentSession != nil {
			playing = v.CurrentSession.PlayerNames()
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(v.ID), 10),
			v.Name,
			playing,
			strconv.Itoa(len(v.WaitingQueue)),
		})
	}
	fmt.Fprintln(w, renderTable(w, []string{"ID", "Cabinet", "Now Playing", "Waiting"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight}))
}

// cabinetHolding finds the cabinet whose queue contains entryID.
func cabinetHolding(views []snapshot.CabinetView, entryID uint) (snapshot.CabinetView, bool) {
	for _, v := range views {
		for _, e := range v.QueueItems {
			if e.ID == entryID {
				return v, true
			}
		}
	}
	return snapshot.CabinetView{}, false
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ", ")
}
