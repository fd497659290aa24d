package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail    string
	loginPassword string

	passwdCurrent string
	passwdNew     string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			var err error
			email, err = promptLine("Email: ")
			if err != nil {
				return err
			}
		}
		senha := loginPassword
		if senha == "" {
			var err error
			senha, err = promptPassword("Senha: ")
			if err != nil {
				return err
			}
		}

		result, err := api.Auth.Login(cmd.Context(), email, senha)
		if err != nil {
			return exitError(err)
		}

		printOK(fmt.Sprintf("Autenticado como %s (%s)", result.User.Username, result.User.Role))
		if result.Warning != "" {
			printWarning(result.Warning)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and discard the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Auth.Logout(cmd.Context()); err != nil {
			// The local token is gone either way; report but don't fail hard.
			printWarning("Logout remoto falhou: " + exitError(err).Error())
			return nil
		}
		printOK("Sessão encerrada.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := api.Auth.Me(cmd.Context())
		if err != nil {
			return exitError(err)
		}
		printTable(
			[]string{"ID", "USUÁRIO", "EMAIL", "PERFIL"},
			[][]string{{fmt.Sprint(user.ID), user.Username, user.Email, user.Role}},
		)
		if user.MustChangePassword {
			printWarning("Troca de senha pendente. Use 'gedo passwd'.")
		}
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the current password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if passwdCurrent == "" || passwdNew == "" {
			return fmt.Errorf("informe --atual e --nova")
		}
		if err := api.Auth.ChangePassword(cmd.Context(), passwdCurrent, passwdNew); err != nil {
			return exitError(err)
		}
		printOK("Senha alterada.")
		return nil
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password [email]",
	Short: "Request a password-reset link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Auth.ForgotPassword(cmd.Context(), args[0]); err != nil {
			return exitError(err)
		}
		printOK("Se o email existir, um link de redefinição foi enviado.")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [token] [nova-senha]",
	Short: "Redeem a password-reset token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Auth.ValidateResetToken(cmd.Context(), args[0]); err != nil {
			return exitError(err)
		}
		if err := api.Auth.ResetPassword(cmd.Context(), args[0], args[1]); err != nil {
			return exitError(err)
		}
		printOK("Senha redefinida. Faça login com a nova senha.")
		return nil
	},
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads with terminal echo disabled. Piped stdin falls
// back to a plain line read.
func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(prompt)
	}
	fmt.Fprint(os.Stderr, prompt)
	senha, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(senha)), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "senha", "", "account password (prompted when omitted)")

	passwdCmd.Flags().StringVar(&passwdCurrent, "atual", "", "current password")
	passwdCmd.Flags().StringVar(&passwdNew, "nova", "", "new password")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, passwdCmd, forgotPasswordCmd, resetPasswordCmd)
}
