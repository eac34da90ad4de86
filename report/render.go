package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Render writes the whole report as text tables. Rendering stays purely
// textual: charts, fonts and word-cloud layout belong to other tools
// that consume the same structured data.
func Render(w io.Writer, rep Report) {
	header := color.New(color.Bold, color.FgGreen)

	fmt.Fprintln(w, header.Render("Senders"))
	renderSenders(w, rep)

	fmt.Fprintln(w, header.Render("Activity"))
	renderActivity(w, rep)

	fmt.Fprintln(w, header.Render("Calls"))
	renderCalls(w, rep)

	fmt.Fprintln(w, header.Render("Vocabulary"))
	renderVocabulary(w, rep)
}

func renderSenders(w io.Writer, rep Report) {
	table := newTable(w)
	table.SetHeader([]string{"Sender", "Messages", "Images", "Stickers", "Mean Len", "Median Len", "Avg Response (min)"})

	senders := lo.Keys(rep.Senders.Messages)
	sort.Strings(senders)

	for _, sender := range senders {
		response := "-"
		if latency, ok := rep.Latency[sender]; ok {
			response = fmt.Sprintf("%.1f", latency)
		}
		lengths := rep.Lengths[sender]
		table.Append([]string{
			sender,
			strconv.Itoa(rep.Senders.Messages[sender]),
			strconv.Itoa(rep.Senders.Images[sender]),
			strconv.Itoa(rep.Senders.Stickers[sender]),
			fmt.Sprintf("%.1f", lengths.Mean),
			fmt.Sprintf("%.1f", lengths.Median),
			response,
		})
	}
	table.Render()
}

func renderActivity(w io.Writer, rep Report) {
	fmt.Fprintf(w, "From %s to %s, %d days, %d messages (%d lines skipped)\n",
		rep.Series.Start.Format("2006-01-02"),
		rep.Series.Last().Format("2006-01-02"),
		rep.Series.Len(), rep.Messages, rep.Skipped)

	table := newTable(w)
	table.SetHeader([]string{"Hour", "Messages"})
	for hour, count := range rep.Hours {
		if count == 0 {
			continue
		}
		table.Append([]string{fmt.Sprintf("%02d:00", hour), strconv.Itoa(count)})
	}
	table.Render()

	if rep.Errs.Forecast != nil {
		fmt.Fprintf(w, "Forecast unavailable: %v\n", rep.Errs.Forecast)
		return
	}
	if rep.Forecast != nil {
		fmt.Fprintf(w, "Forecast %s, next %d days: min %.1f, mean %.1f, max %.1f\n",
			rep.Forecast.Order,
			len(rep.Forecast.Values),
			lo.Min(rep.Forecast.Values),
			mean(rep.Forecast.Values),
			lo.Max(rep.Forecast.Values))
	}
}

func renderCalls(w io.Writer, rep Report) {
	if rep.Errs.Calls != nil {
		fmt.Fprintf(w, "No call data: %v\n", rep.Errs.Calls)
		return
	}
	fmt.Fprintf(w, "Total %d, completed %d, missed %d, mean duration %.1f min\n",
		rep.Summary.Total, rep.Summary.Completed, rep.Summary.Missed,
		rep.Summary.MeanCompletedMinutes)

	table := newTable(w)
	table.SetHeader([]string{"Day", "Hour", "Mean Duration (min)"})
	for day := 0; day < len(weekdays); day++ {
		for hour := 0; hour < 24; hour++ {
			duration, ok := rep.Heatmap.Mean(day, hour)
			if !ok {
				continue
			}
			table.Append([]string{
				weekdays[day],
				fmt.Sprintf("%02d:00", hour),
				fmt.Sprintf("%.1f", duration),
			})
		}
	}
	table.Render()
}

func renderVocabulary(w io.Writer, rep Report) {
	if rep.Language != "" {
		fmt.Fprintf(w, "Detected language: %s\n", rep.Language)
	}

	table := newTable(w)
	table.SetHeader([]string{"Word", "Count"})
	for _, row := range rep.TopWords {
		table.Append([]string{row.Word, strconv.Itoa(row.Count)})
	}
	table.Render()

	if rep.Errs.Emojis != nil {
		fmt.Fprintf(w, "No emojis found in the chat\n")
		return
	}
	table = newTable(w)
	table.SetHeader([]string{"Emoji", "Count"})
	for _, row := range rep.TopEmojis {
		table.Append([]string{row.Emoji, strconv.Itoa(row.Count)})
	}
	table.Render()
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
