package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func addAuth(topLevel *cobra.Command, app *App) {
	var signupEmail, loginEmail string

	signup := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, password, err := app.credentials(signupEmail)
			if err != nil {
				return err
			}
			confirmPassword, err := promptPassword(app.out, "비밀번호 확인")
			if err != nil {
				return err
			}
			if confirmPassword != password {
				return errors.New("비밀번호가 일치하지 않습니다")
			}

			s, err := app.api.SignUp(cmd.Context(), addr, password)
			if err != nil {
				return err
			}
			bold.Fprintf(app.out, "가입을 환영해요, %s!\n", s.Email)
			return nil
		},
	}
	signup.Flags().StringVarP(&signupEmail, "email", "e", "", "account email")

	login := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, password, err := app.credentials(loginEmail)
			if err != nil {
				return err
			}
			s, err := app.api.SignIn(cmd.Context(), addr, password)
			if err != nil {
				return err
			}
			bold.Fprintf(app.out, "%s 로 로그인했어요.\n", s.Email)
			return nil
		},
	}
	login.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.api.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "로그아웃했어요.")
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			me, err := app.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			bold.Fprintln(app.out, me.Email)
			faint.Fprintf(app.out, "id %s · 가입 %s\n", me.ID, me.CreatedAt.In(app.loc).Format(timeLayout))
			return nil
		},
	}

	passwd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := promptPassword(app.out, "현재 비밀번호")
			if err != nil {
				return err
			}
			next, err := promptPassword(app.out, "새 비밀번호")
			if err != nil {
				return err
			}
			confirmPassword, err := promptPassword(app.out, "새 비밀번호 확인")
			if err != nil {
				return err
			}

			if err := app.api.ChangePassword(cmd.Context(), current, next, confirmPassword); err != nil {
				return err
			}
			fmt.Fprintln(app.out, "비밀번호를 변경했어요.")
			return nil
		},
	}

	topLevel.AddCommand(signup, login, logout, whoami, passwd)
}

func (a *App) credentials(email string) (string, string, error) {
	if email == "" {
		var err error
		if email, err = promptLine(a.in, a.out, "이메일"); err != nil {
			return "", "", err
		}
	}
	password, err := promptPassword(a.out, "비밀번호")
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}
