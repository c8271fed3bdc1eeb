// Command adduser provisions Inversie accounts. There is no public sign-up,
// so operators create clients and bewindvoerders here and link them.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/service"
	"github.com/aussiebroadwan/inversie/internal/inversie/store/drivers/sqlite"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Email address used to log in")
	userType := fs.String("type", "client", "Account type: client or bewindvoerder")
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")
	pinFlag := fs.String("pin", "", "PIN of 4 to 6 digits (optional, will prompt if omitted)")
	guardianOf := fs.String("guardian-of", "", "Client email to link this bewindvoerder to")
	dbPath := fs.String("db", envOr("DATABASE_FILE", "inversie.db"), "Path to database file")
	pepperPath := fs.String("pepper", envOr("PEPPER_FILE", "pepper"), "Path to pepper file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *first == "" || *last == "" {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> -first <name> -last <name> [-type client|bewindvoerder] [-pin <pin>] [-guardian-of <client email>] [-db <db_path>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: email, first, last")
	}

	typ := domain.UserType(strings.ToUpper(strings.TrimSpace(*userType)))
	if !typ.Valid() {
		return fmt.Errorf("unknown account type %q", *userType)
	}
	if *guardianOf != "" && typ != domain.UserTypeBewindvoerder {
		return errors.New("-guardian-of requires -type bewindvoerder")
	}

	pin := *pinFlag
	if pin == "" {
		fmt.Fprint(stdout, "PIN: ")
		var err error
		pin, err = readPIN(stdin)
		if err != nil {
			return fmt.Errorf("failed to read PIN: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	cryptox.SetPepperPath(*pepperPath)

	st, err := sqlite.NewStore(sqlite.DSN(*dbPath))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	ctx := context.Background()
	accounts := &service.AccountService{Store: st, Clock: time.Now}

	user, err := accounts.CreateUser(ctx, service.NewUser{
		Type:      typ,
		Email:     *email,
		FirstName: *first,
		LastName:  *last,
		PIN:       pin,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	fmt.Fprintf(stdout, "User %s (%s) created with ID %s\n", user.Email, user.Type, user.ID)

	if *guardianOf != "" {
		if err := accounts.LinkGuardian(ctx, *guardianOf, user.Email); err != nil {
			return fmt.Errorf("failed to link to %s: %w", *guardianOf, err)
		}
		fmt.Fprintf(stdout, "Linked %s as bewindvoerder of %s\n", user.Email, *guardianOf)
	}
	return nil
}

func readPIN(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	// Pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
