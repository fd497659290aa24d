package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardObraID int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard panels",
	Long: `Loads the statistics, recent activity, timeline and record-type
distribution panels in parallel. A panel that fails to load is shown
empty; the others still render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resumo, err := api.Dashboard.Resumo(cmd.Context(), dashboardObraID)
		if err != nil {
			return exitError(err)
		}

		printTable(
			[]string{"TOTAL", "ÚLTIMOS 30 DIAS", "COM ANEXO", "MÉDIA DIÁRIA"},
			[][]string{{
				fmt.Sprint(resumo.Estatisticas.TotalRegistros),
				fmt.Sprint(resumo.Estatisticas.RegistrosUltimos30Dias),
				fmt.Sprint(resumo.Estatisticas.RegistrosComAnexo),
				fmt.Sprintf("%.1f", resumo.Estatisticas.MediaDiaria),
			}},
		)

		if len(resumo.Atividades) > 0 {
			fmt.Println()
			rows := make([][]string, 0, len(resumo.Atividades))
			for _, a := range resumo.Atividades {
				rows = append(rows, []string{a.DataRegistro, a.ObraNome, a.TipoNome, a.Descricao})
			}
			printTable([]string{"DATA", "OBRA", "TIPO", "DESCRIÇÃO"}, rows)
		}

		if len(resumo.TopTipos) > 0 {
			fmt.Println()
			rows := make([][]string, 0, len(resumo.TopTipos))
			for _, t := range resumo.TopTipos {
				rows = append(rows, []string{t.Nome, fmt.Sprint(t.Total)})
			}
			printTable([]string{"TIPO", "REGISTROS"}, rows)
		}
		return nil
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&dashboardObraID, "obra", 0, "restrict panels to one obra (0 = todas)")
	rootCmd.AddCommand(dashboardCmd)
}
