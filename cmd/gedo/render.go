package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// printSessionExpired is the CLI's stand-in for the browser's forced
// navigation to the login screen.
func printSessionExpired() {
	fmt.Fprintln(os.Stderr, bannerStyle.Render("Sessão expirada. Execute 'gedo login' novamente."))
}

func printOK(msg string) {
	fmt.Println(okStyle.Render(msg))
}

func printWarning(msg string) {
	fmt.Println(warningStyle.Render(msg))
}

// printTable renders rows under a bold header, columns padded to the
// widest cell.
func printTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// printJSON pretty-prints v, for commands whose payload is too deep for a
// table.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
