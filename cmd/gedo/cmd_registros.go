package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joao-primo/gedo-cimcop-sub000/internal/gedo"
	"github.com/joao-primo/gedo-cimcop-sub000/internal/transport"
)

var registrosCmd = &cobra.Command{
	Use:   "registros",
	Short: "Manage document records",
}

var registrosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List records",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultado, err := api.Registros.Listar(cmd.Context(), gedo.Filtro{PerPage: 50})
		if err != nil {
			return exitError(err)
		}
		rows := make([][]string, 0, len(resultado.Registros))
		for _, r := range resultado.Registros {
			rows = append(rows, []string{
				fmt.Sprint(r.ID), r.CodigoNumero, r.Titulo, r.TipoRegistroNome, r.DataRegistro,
			})
		}
		printTable([]string{"ID", "CÓDIGO", "TÍTULO", "TIPO", "DATA"}, rows)
		return nil
	},
}

var registrosGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		registro, err := api.Registros.Obter(cmd.Context(), id)
		if err != nil {
			return exitError(err)
		}
		return printJSON(registro)
	},
}

var registrosDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		if err := api.Registros.Deletar(cmd.Context(), id); err != nil {
			return exitError(err)
		}
		printOK("Registro removido.")
		return nil
	},
}

var registrosDownloadCmd = &cobra.Command{
	Use:   "download [id]",
	Short: "Download a record's attachment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		anexo, err := api.Registros.DownloadAnexo(cmd.Context(), id)
		if err != nil {
			return downloadError(err)
		}
		if err := os.WriteFile(anexo.Filename, anexo.Data, 0644); err != nil {
			return err
		}
		printOK("Baixado: " + anexo.Filename)
		return nil
	},
}

var importacaoCmd = &cobra.Command{
	Use:   "importacao",
	Short: "Batch-import records from a spreadsheet",
}

var importacaoTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Download the import spreadsheet template",
	RunE: func(cmd *cobra.Command, args []string) error {
		anexo, err := api.Importacao.DownloadTemplate(cmd.Context())
		if err != nil {
			return downloadError(err)
		}
		if err := os.WriteFile(anexo.Filename, anexo.Data, 0644); err != nil {
			return err
		}
		printOK("Template salvo em " + anexo.Filename)
		return nil
	},
}

var importacaoFinalizar bool

var importacaoProcessarCmd = &cobra.Command{
	Use:   "processar [planilha]",
	Short: "Validate a filled spreadsheet (and optionally finalize)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		resultado, err := api.Importacao.Processar(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return exitError(err)
		}

		fmt.Printf("Linhas: %d | válidas: %d | com erro: %d\n",
			resultado.TotalLinhas, len(resultado.LinhasValidas), len(resultado.LinhasComErro))
		for _, linha := range resultado.LinhasComErro {
			printWarning(fmt.Sprintf("linha %d: %v", linha.Linha, linha.Erros))
		}

		if !importacaoFinalizar {
			return nil
		}
		if !resultado.PodeFinalizar {
			return fmt.Errorf("a planilha contém erros; corrija antes de finalizar")
		}

		final, err := api.Importacao.Finalizar(cmd.Context(), resultado.LinhasValidas)
		if err != nil {
			return exitError(err)
		}
		printOK(fmt.Sprintf("Importação concluída: %d registros criados.", final.RegistrosCriados))
		return nil
	},
}

// downloadError mirrors the download screen's distinct messages for the
// cases that have different corrective actions.
func downloadError(err error) error {
	var httpErr *transport.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Status {
		case http.StatusNotFound:
			return errors.New("arquivo não encontrado")
		case http.StatusForbidden:
			return errors.New("acesso negado ao arquivo")
		}
	}
	var toErr *transport.TimeoutError
	if errors.As(err, &toErr) {
		return errors.New("timeout no download - arquivo muito grande")
	}
	return exitError(err)
}

func init() {
	importacaoProcessarCmd.Flags().BoolVar(&importacaoFinalizar, "finalizar", false, "create the records when validation passes")

	registrosCmd.AddCommand(registrosListCmd, registrosGetCmd, registrosDeleteCmd, registrosDownloadCmd)
	importacaoCmd.AddCommand(importacaoTemplateCmd, importacaoProcessarCmd)
	rootCmd.AddCommand(registrosCmd, importacaoCmd)
}
