package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/go-balance-keeper/internal/adapter"
	"github.com/MKhiriev/go-balance-keeper/internal/logger"
	"github.com/MKhiriev/go-balance-keeper/internal/service"
	"github.com/MKhiriev/go-balance-keeper/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errInvalidAmount  = errors.New("amount must be a decimal number")
)

const usage = `usage: %[1]s [flags] <command> [command flags]

commands:
  register -name <name> -email <email> -password <password>
  login    -email <email> -password <password>
  summary
  add      -amount <n> -type INCOME|EXPENSE -category <c> [-description <d>] [-created-at <RFC 3339>]
  logout
  version
`

type App struct {
	services  *service.ClientServices
	adapter   adapter.ServerAdapter
	navigator Navigator
	buildInfo models.BuildInfo

	program string
	out     io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, buildInfo models.BuildInfo, program string, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services:  services,
		adapter:   serverAdapter,
		navigator: NewConsoleNavigator(out, program),
		buildInfo: buildInfo,
		program:   program,
		out:       out,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return errNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	var err error
	switch command {
	case "register":
		err = a.register(ctx, rest)
	case "login":
		err = a.login(ctx, rest)
	case "summary":
		err = a.summary(ctx)
	case "add":
		err = a.addTransaction(ctx, rest)
	case "logout":
		a.logout(ctx)
	case "version":
		a.version(ctx)
	case "help", "-h", "-help":
		a.printUsage()
	default:
		a.printUsage()
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}

	if errors.Is(err, service.ErrNotLoggedIn) {
		fmt.Fprintf(a.out, "You are not logged in.\n")
		_ = a.navigator.ToLogin(ctx)
	}
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := a.flagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "e-mail address")
	fs.StringVar(&req.Password, "password", "", "password, at least 6 characters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.services.AuthService.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s <%s>\n", session.Name, session.Email)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := a.flagSet("login")
	fs.StringVar(&req.Email, "email", "", "e-mail address")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	session, err := a.services.AuthService.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s <%s>\n", session.Name, session.Email)
	return nil
}

func (a *App) summary(ctx context.Context) error {
	summary, err := a.services.LedgerService.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", summary.User.Name, summary.User.Email)
	fmt.Fprintf(a.out, "Balance: %s  Income: %s  Expense: %s\n",
		summary.Balance.StringFixed(2), summary.Income.StringFixed(2), summary.Expense.StringFixed(2))

	if len(summary.RecentTransactions) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, t := range summary.RecentTransactions {
		description := ""
		if t.Description != nil {
			description = *t.Description
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.CreatedAt.Format("2006-01-02 15:04"), t.Type, t.Amount.StringFixed(2), t.Category, description)
	}
	return tw.Flush()
}

func (a *App) addTransaction(ctx context.Context, args []string) error {
	var amount, transactionType, category, description, createdAt string
	fs := a.flagSet("add")
	fs.StringVar(&amount, "amount", "", "positive amount")
	fs.StringVar(&transactionType, "type", "", "INCOME or EXPENSE")
	fs.StringVar(&category, "category", "", "category")
	fs.StringVar(&description, "description", "", "optional description")
	fs.StringVar(&createdAt, "created-at", "", "optional RFC 3339 time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := newTransactionInput(amount, transactionType, category, description, createdAt)
	if err != nil {
		return err
	}

	result, err := a.services.LedgerService.AddTransaction(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s. Balance: %s\n", result.Message, result.Balance.StringFixed(2))
	return nil
}

// newTransactionInput leaves empty flags unset so the server reports them.
func newTransactionInput(amount, transactionType, category, description, createdAt string) (models.TransactionInput, error) {
	var input models.TransactionInput

	if amount != "" {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return models.TransactionInput{}, fmt.Errorf("%w: %q", errInvalidAmount, amount)
		}
		input.Amount = &d
	}
	if transactionType != "" {
		t := models.TransactionType(strings.ToUpper(transactionType))
		input.Type = &t
	}
	if category != "" {
		input.Category = &category
	}
	if description != "" {
		input.Description = &description
	}
	if createdAt != "" {
		input.CreatedAt = &createdAt
	}

	return input, nil
}

// logout ignores the result: the helper already cleared the session and
// moved to the login prompt, and each failure was logged on the way.
func (a *App) logout(ctx context.Context) {
	fmt.Fprintln(a.out, "Logging out.")
	_ = Logout(ctx, a.services.AuthService, a.navigator)
}

func (a *App) version(ctx context.Context) {
	fmt.Fprintf(a.out, "Client version: %s\n", a.buildInfo)

	serverVersion, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		fmt.Fprintln(a.out, "Server version: unavailable")
		return
	}
	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(a.program+" "+name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) printUsage() {
	fmt.Fprintf(a.out, usage, a.program)
}
