package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	apiclient "github.com/sportlane/shopclient/internal/client/api"
	"github.com/sportlane/shopclient/internal/client/auth"
	"github.com/sportlane/shopclient/internal/client/cache"
	"github.com/sportlane/shopclient/internal/client/realtime"
	"github.com/sportlane/shopclient/internal/client/session"
	"github.com/sportlane/shopclient/internal/client/storage"
)

// Cli bundles the services the commands operate on
type Cli struct {
	client *apiclient.Client
	auth   *auth.Service
	guard  *session.Guard
	state  *session.State
	store  *cache.Store
	events *realtime.Service
	synced *realtime.Synchronizer
	creds  storage.AuthStorage
	prefs  storage.PrefsStorage
}

// New creates the command runner
func New(
	client *apiclient.Client,
	authService *auth.Service,
	guard *session.Guard,
	state *session.State,
	store *cache.Store,
	events *realtime.Service,
	synced *realtime.Synchronizer,
	creds storage.AuthStorage,
	prefs storage.PrefsStorage,
) *Cli {
	return &Cli{
		client: client,
		auth:   authService,
		guard:  guard,
		state:  state,
		store:  store,
		events: events,
		synced: synced,
		creds:  creds,
		prefs:  prefs,
	}
}

// Run dispatches one command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "signup":
		return c.runSignUp(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "products":
		return c.runProducts(ctx, args)
	case "product":
		return c.runProduct(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "cart":
		return c.runCart(ctx, args)
	case "orders":
		return c.runOrders(ctx, args)
	case "favorites":
		return c.runFavorites(ctx, args)
	case "reviews":
		return c.runReviews(ctx, args)
	case "support":
		return c.runSupport(ctx, args)
	case "lang":
		return c.runLang(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command overview
func PrintUsage() {
	fmt.Println("Sportlane Shop Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shopclient [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     API server URL (default: http://localhost:3000)")
	fmt.Println("  --ws URL         Realtime server URL (default: ws://localhost:3000/ws)")
	fmt.Println("  --db PATH        Path to local database (default: shopclient.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                         Sign in")
	fmt.Println("  signup                        Register a new account")
	fmt.Println("  logout                        Sign out")
	fmt.Println("  status                        Show session status")
	fmt.Println("  profile                       Show profile")
	fmt.Println("  products [flags]              List products")
	fmt.Println("  product <id>                  Show one product")
	fmt.Println("  categories                    List categories")
	fmt.Println("  cart [add|remove|clear] ...   Show or edit the cart")
	fmt.Println("  orders [create] ...           List or place orders")
	fmt.Println("  favorites [add|remove] ...    Show or edit favorites")
	fmt.Println("  reviews <productId>           List product reviews")
	fmt.Println("  support [create]              List or open support tickets")
	fmt.Println("  lang [code]                   Show or set the language preference")
	fmt.Println("  watch                         Follow realtime updates")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  shopclient login")
	fmt.Println("  shopclient products -search 'running shoes' -limit 10")
	fmt.Println("  shopclient cart add <productId> 2")
	fmt.Println("  shopclient --server https://shop.example.com watch")
}

// readInput reads one trimmed line from stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword reads a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
