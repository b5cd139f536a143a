package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanizio/userform/internal/registration"
)

// errInvalid makes the process exit non-zero after the messages are printed.
var errInvalid = errors.New("registration invalid")

func newCheckCmd() *cobra.Command {
	var d registration.Draft
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate one registration and print any errors",
		Example: `  userform check --first Jane --last Doe --age 30 \
      --email jane@doe.com --phone 1234567890`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			errs := registration.Validate(d)
			out := cmd.OutOrStdout()
			if errs.Empty() {
				fmt.Fprintln(out, "ok")
				return nil
			}
			for _, f := range registration.Fields {
				if msg, bad := errs[f]; bad {
					fmt.Fprintf(out, "%s: %s\n", f, msg)
				}
			}
			cmd.SilenceErrors = true
			return errInvalid
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&d.FirstName, "first", "", "first name")
	fl.StringVar(&d.LastName, "last", "", "last name")
	fl.StringVar(&d.Age, "age", "", "age in years")
	fl.StringVar(&d.Email, "email", "", "email address")
	fl.StringVar(&d.Phone, "phone", "", "10-digit phone number")
	return cmd
}
