package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/stacygol/bloglist/internal/database"
	"github.com/stacygol/bloglist/internal/errs"
	"github.com/stacygol/bloglist/internal/lib/utils"
	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/repository"
	"github.com/stacygol/bloglist/internal/validation"
)

type phonebookStore interface {
	List(ctx context.Context) ([]model.Person, error)
	Create(ctx context.Context, person *model.Person) (*model.Person, error)
}

func newPhonebookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phonebook <password> [name number]",
		Short: "List phonebook entries, or add one",
		Args:  cobra.MaximumNArgs(3),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := checkPhonebookArgs(cmd.ErrOrStderr(), args); err != nil {
			_ = cmd.Usage()
			return err
		}

		cfg, loggerService, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		dbConfig, err := cfg.Database.WithPassword(args[0])
		if err != nil {
			return err
		}
		cfg.Database = dbConfig

		db, err := database.New(cfg, log, loggerService)
		if err != nil {
			return err
		}
		defer db.Close()

		return runPhonebook(cmd.Context(), cmd.OutOrStdout(), repository.NewPersonRepository(db.Pool), args[1:])
	}

	return cmd
}

// checkPhonebookArgs rejects calls without a password, or with a name but
// no number, before anything connects to the database.
func checkPhonebookArgs(w io.Writer, args []string) error {
	switch len(args) {
	case 0:
		fmt.Fprintln(w, "give password as argument")
		return errUsage
	case 2:
		fmt.Fprintln(w, "give both name and number")
		return errUsage
	default:
		return nil
	}
}

// runPhonebook prints every entry when entry is empty, otherwise adds the
// entry given as name and number.
func runPhonebook(ctx context.Context, out io.Writer, store phonebookStore, entry []string) error {
	if len(entry) == 0 {
		persons, err := store.List(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "phonebook:")
		for _, p := range persons {
			if err := utils.PrintJSON(out, p); err != nil {
				return err
			}
		}
		return nil
	}

	req := &model.CreatePersonRequest{Name: entry[0], Number: entry[1]}
	if err := validation.Validate(req); err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return errors.New(httpErr.Message)
		}
		return err
	}

	person, err := store.Create(ctx, req.Person())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "added %s number %s to phonebook\n", person.Name, person.Number)
	return nil
}
