package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var obrasCmd = &cobra.Command{
	Use:   "obras",
	Short: "List works/sites",
	RunE: func(cmd *cobra.Command, args []string) error {
		obras, err := api.Obras.Listar(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		rows := make([][]string, 0, len(obras))
		for _, o := range obras {
			rows = append(rows, []string{fmt.Sprint(o.ID), o.Codigo, o.Nome, o.Cliente, o.Status})
		}
		printTable([]string{"ID", "CÓDIGO", "NOME", "CLIENTE", "STATUS"}, rows)
		return nil
	},
}

var usuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		usuarios, err := api.Usuarios.Listar(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		rows := make([][]string, 0, len(usuarios))
		for _, u := range usuarios {
			ativo := "não"
			if u.Ativo {
				ativo = "sim"
			}
			rows = append(rows, []string{fmt.Sprint(u.ID), u.Username, u.Email, u.Role, ativo})
		}
		printTable([]string{"ID", "USUÁRIO", "EMAIL", "PERFIL", "ATIVO"}, rows)
		return nil
	},
}

var tiposCmd = &cobra.Command{
	Use:   "tipos",
	Short: "List record types",
	RunE: func(cmd *cobra.Command, args []string) error {
		tipos, err := api.TiposRegistro.ListarTodos(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		rows := make([][]string, 0, len(tipos))
		for _, t := range tipos {
			ativo := "não"
			if t.Ativo {
				ativo = "sim"
			}
			rows = append(rows, []string{fmt.Sprint(t.ID), t.Nome, t.Descricao, ativo})
		}
		printTable([]string{"ID", "NOME", "DESCRIÇÃO", "ATIVO"}, rows)
		return nil
	},
}

var classificacoesCmd = &cobra.Command{
	Use:   "classificacoes [grupo]",
	Short: "List classification groups, or the subgroups of one group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			subgrupos, err := api.Classificacoes.Subgrupos(cmd.Context(), args[0])
			if err != nil {
				return exitError(err)
			}
			for _, s := range subgrupos {
				fmt.Println(s)
			}
			return nil
		}
		grupos, err := api.Classificacoes.Grupos(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		for _, g := range grupos {
			fmt.Println(g)
		}
		return nil
	},
}

var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "List notification workflows",
	RunE: func(cmd *cobra.Command, args []string) error {
		workflows, err := api.Workflow.Listar(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		rows := make([][]string, 0, len(workflows))
		for _, w := range workflows {
			ativo := "não"
			if w.Ativo {
				ativo = "sim"
			}
			rows = append(rows, []string{fmt.Sprint(w.ID), w.Nome, w.ObraNome, ativo})
		}
		printTable([]string{"ID", "NOME", "OBRA", "ATIVO"}, rows)
		return nil
	},
}

var workflowTestarCmd = &cobra.Command{
	Use:   "testar [id]",
	Short: "Send a test notification through a workflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("id inválido: %s", args[0])
		}
		if err := api.Workflow.Testar(cmd.Context(), id); err != nil {
			return exitError(err)
		}
		printOK("Notificação de teste enviada.")
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the backend settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs, err := api.Configuracoes.Listar(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		return printJSON(configs)
	},
}

var configBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the backend settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Configuracoes.Backup(cmd.Context()); err != nil {
			return exitError(err)
		}
		printOK("Backup das configurações criado.")
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Configuracoes.Reset(cmd.Context()); err != nil {
			return exitError(err)
		}
		printOK("Configurações restauradas.")
		return nil
	},
}

func init() {
	workflowCmd.AddCommand(workflowTestarCmd)
	configCmd.AddCommand(configBackupCmd, configResetCmd)
	rootCmd.AddCommand(obrasCmd, usuariosCmd, tiposCmd, classificacoesCmd, workflowCmd, configCmd)
}
