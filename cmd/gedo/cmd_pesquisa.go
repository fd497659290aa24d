package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/gedo"
)

var pesquisaFiltro gedo.Filtro

var pesquisaCmd = &cobra.Command{
	Use:   "pesquisa",
	Short: "Search records",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultado, err := api.Pesquisa.Pesquisar(cmd.Context(), pesquisaFiltro)
		if err != nil {
			return exitError(err)
		}

		rows := make([][]string, 0, len(resultado.Registros))
		for _, r := range resultado.Registros {
			anexo := ""
			if r.TemAnexo {
				anexo = "sim"
			}
			rows = append(rows, []string{
				fmt.Sprint(r.ID), r.CodigoNumero, r.Titulo, r.TipoRegistroNome,
				r.ObraNome, r.DataRegistro, anexo,
			})
		}
		printTable([]string{"ID", "CÓDIGO", "TÍTULO", "TIPO", "OBRA", "DATA", "ANEXO"}, rows)
		fmt.Printf("\nPágina %d de %d (%d registros)\n",
			resultado.Pagination.Page, resultado.Pagination.Pages, resultado.Pagination.Total)
		return nil
	},
}

var pesquisaFiltrosCmd = &cobra.Command{
	Use:   "filtros",
	Short: "Show the available search filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		filtros, err := api.Pesquisa.Filtros(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		return printJSON(filtros)
	},
}

var pesquisaExportCmd = &cobra.Command{
	Use:   "exportar",
	Short: "Export the search results to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		anexo, err := api.Relatorios.Exportar(cmd.Context(), pesquisaFiltro)
		if err != nil {
			return exitError(err)
		}
		if err := os.WriteFile(anexo.Filename, anexo.Data, 0644); err != nil {
			return err
		}
		printOK("Exportado para " + anexo.Filename)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{pesquisaCmd, pesquisaExportCmd} {
		cmd.Flags().StringVar(&pesquisaFiltro.Texto, "q", "", "free-text search")
		cmd.Flags().IntVar(&pesquisaFiltro.ObraID, "obra", 0, "filter by obra id")
		cmd.Flags().IntVar(&pesquisaFiltro.TipoRegistroID, "tipo", 0, "filter by record-type id")
		cmd.Flags().StringVar(&pesquisaFiltro.DataRegistroInicio, "de", "", "record date from (YYYY-MM-DD)")
		cmd.Flags().StringVar(&pesquisaFiltro.DataRegistroFim, "ate", "", "record date to (YYYY-MM-DD)")
		cmd.Flags().StringVar(&pesquisaFiltro.Ordenacao, "ordenar", "", "sort order")
	}
	pesquisaCmd.Flags().IntVar(&pesquisaFiltro.Page, "page", 1, "result page")
	pesquisaCmd.Flags().IntVar(&pesquisaFiltro.PerPage, "per-page", 20, "results per page")

	pesquisaCmd.AddCommand(pesquisaFiltrosCmd, pesquisaExportCmd)
	rootCmd.AddCommand(pesquisaCmd)
}
