package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/auth"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/client"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/observability"
)

const usage = `Usage: %s <command> [flags]

Commands:
  list                                  list all patients
  get <id>                              show one patient
  create -first -last -email -phone -dob
                                        create a patient (admin)
  update <id> [-first -last -email -phone -dob]
                                        change the given fields (admin)
  delete <id>                           delete a patient (admin)
  whoami                                show the signed-in account
  hash-password                         print a bcrypt hash for a password

Every command except hash-password signs in first. Pass -u or set
PATIENTCTL_USERNAME; the password is read from PATIENTCTL_PASSWORD or
prompted for.
`

func main() {
	if len(os.Args) <= 1 {
		usageExit()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.Logger.Format = "console"
	logger, err := observability.NewLogger(cfg.Logger, "patientctl")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cmd, args := os.Args[1], os.Args[2:]
	if cmd == "hash-password" {
		hashPassword(logger, cfg.Auth.BcryptCost)
		return
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	username := fs.String("u", os.Getenv("PATIENTCTL_USERNAME"), "username (email)")
	fields := patientFlags(fs)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Client.Timeout())
	defer cancel()

	var run func(*client.Client) error
	switch cmd {
	case "whoami":
		parse(fs, args, 0)
		run = func(c *client.Client) error {
			u, err := c.Me(ctx)
			if err != nil {
				return err
			}
			return printJSON(u)
		}
	case "list":
		parse(fs, args, 0)
		run = func(c *client.Client) error { return list(ctx, c) }
	case "get":
		id := parse(fs, args, 1)
		run = func(c *client.Client) error { return get(ctx, c, id) }
	case "create":
		parse(fs, args, 0)
		run = func(c *client.Client) error { return create(ctx, c, fields.input()) }
	case "update":
		id := parse(fs, args, 1)
		run = func(c *client.Client) error { return update(ctx, c, id, fields.patch(fs)) }
	case "delete":
		id := parse(fs, args, 1)
		run = func(c *client.Client) error {
			if err := c.DeletePatient(ctx, id); err != nil {
				return err
			}
			fmt.Printf("deleted patient %d\n", id)
			return nil
		}
	default:
		usageExit()
	}

	api := client.New(cfg.Web.APIURL, client.WithTimeout(cfg.Client.Timeout()))
	if _, err := api.Login(ctx, *username, readPassword()); err != nil {
		logger.Fatal("login failed", zap.String("api", cfg.Web.APIURL), zap.Error(err))
	}
	if err := run(api); err != nil {
		logger.Fatal(cmd+" failed", zap.Error(err), zap.String("hint", hint(err)))
	}
}

func usageExit() {
	fmt.Fprintf(os.Stderr, usage, os.Args[0])
	os.Exit(1)
}

// parse reads flags and the expected number of leading id arguments.
// Flags may come before or after the id.
func parse(fs *flag.FlagSet, args []string, ids int) int {
	var positional []string
	for {
		_ = fs.Parse(args)
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != ids {
		usageExit()
	}
	if ids == 0 {
		return 0
	}
	id, err := strconv.Atoi(positional[0])
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "invalid patient id %q\n", positional[0])
		os.Exit(1)
	}
	return id
}

type fieldFlags struct {
	first, last, email, phone, dob *string
}

func patientFlags(fs *flag.FlagSet) fieldFlags {
	return fieldFlags{
		first: fs.String("first", "", "first name"),
		last:  fs.String("last", "", "last name"),
		email: fs.String("email", "", "email address"),
		phone: fs.String("phone", "", "phone number"),
		dob:   fs.String("dob", "", "date of birth (YYYY-MM-DD)"),
	}
}

func (f fieldFlags) input() domain.PatientInput {
	return domain.PatientInput{
		FirstName:   *f.first,
		LastName:    *f.last,
		Email:       *f.email,
		PhoneNumber: *f.phone,
		DOB:         *f.dob,
	}
}

// patch includes only the flags given on the command line.
func (f fieldFlags) patch(fs *flag.FlagSet) domain.PatientPatch {
	var p domain.PatientPatch
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "first":
			p.FirstName = f.first
		case "last":
			p.LastName = f.last
		case "email":
			p.Email = f.email
		case "phone":
			p.PhoneNumber = f.phone
		case "dob":
			p.DOB = f.dob
		}
	})
	return p
}

func list(ctx context.Context, c *client.Client) error {
	patients, err := c.ListPatients(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tDOB")
	for _, p := range patients {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n", p.ID, p.FirstName, p.LastName, p.Email, p.PhoneNumber, p.DOB)
	}
	return w.Flush()
}

func get(ctx context.Context, c *client.Client, id int) error {
	p, err := c.GetPatient(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func create(ctx context.Context, c *client.Client, in domain.PatientInput) error {
	p, err := c.CreatePatient(ctx, in)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func update(ctx context.Context, c *client.Client, id int, patch domain.PatientPatch) error {
	if patch.Empty() {
		return errors.New("no fields to update")
	}
	p, err := c.UpdatePatient(ctx, id, patch)
	if err != nil {
		return err
	}
	return printJSON(p)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func hint(err error) string {
	switch {
	case errors.Is(err, client.ErrPermissionDenied):
		return "this action needs an admin account"
	case errors.Is(err, client.ErrNotFound):
		return "no patient with that id"
	case errors.Is(err, client.ErrNotAuthenticated):
		return "sign in again"
	}
	return ""
}

func readPassword() string {
	if pw := os.Getenv("PATIENTCTL_PASSWORD"); pw != "" {
		return pw
	}
	fmt.Fprint(os.Stderr, "Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading password: %v\n", err)
		os.Exit(1)
	}
	return string(bytePassword)
}

func hashPassword(logger *zap.Logger, cost int) {
	fmt.Print("Enter password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		logger.Fatal("error reading password", zap.Error(err))
	}

	hashed, err := auth.HashPassword(string(bytePassword), cost)
	if err != nil {
		logger.Fatal("error hashing password", zap.Error(err))
	}
	fmt.Printf("\nHashed password: %s\n", hashed)
}
