package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/uaifood/client-go/internal/api"
	cartapp "github.com/uaifood/client-go/internal/cart/app"
	catalogapp "github.com/uaifood/client-go/internal/catalog/app"
	catalogdomain "github.com/uaifood/client-go/internal/catalog/domain"
	catalogadapter "github.com/uaifood/client-go/internal/catalog/infra/adapter"
	checkoutapp "github.com/uaifood/client-go/internal/checkout/app"
	checkoutdomain "github.com/uaifood/client-go/internal/checkout/domain"
	checkoutadapter "github.com/uaifood/client-go/internal/checkout/infra/adapter"
	orderapp "github.com/uaifood/client-go/internal/order/app"
	orderadapter "github.com/uaifood/client-go/internal/order/infra/adapter"
	sessionapp "github.com/uaifood/client-go/internal/session/app"
	sessionadapter "github.com/uaifood/client-go/internal/session/infra/adapter"
	"github.com/uaifood/client-go/pkg/config"
	"github.com/uaifood/client-go/pkg/localstore"
	"github.com/uaifood/client-go/pkg/logger"
	"github.com/uaifood/client-go/pkg/shutdown"
)

const usage = `usage: uaifood <command> [args]

commands:
  menu                            show the menu
  login <email> <password>        sign in
  logout                          sign out
  cart show                       list cart contents
  cart add <itemID> [qty]         add a menu item to the cart
  cart rm <itemID>                remove a line
  cart qty <itemID> <n>           change a line quantity
  cart clear                      empty the cart
  addresses                       list delivery addresses
  checkout <addressID> <payment>  place the order (CASH|DEBIT|CREDIT|PIX)
  orders [orderID]                list my orders, or show one
`

type app struct {
	cart     *cartapp.Store
	session  *sessionapp.Holder
	catalog  *catalogapp.Service
	orders   *orderapp.Service
	checkout *checkoutapp.Service
	client   *api.Client
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service: "uaifood",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Out:     os.Stderr,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := localstore.OpenSQLite(cfg.StatePath)
	if err != nil {
		log.Error("open local state", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	var holder *sessionapp.Holder
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, func() string {
		if holder == nil {
			return ""
		}
		return holder.Token()
	})
	holder = sessionapp.NewHolder(sessionadapter.NewAPIAuthenticator(client), store, log)

	if err := holder.Load(ctx); err != nil {
		log.Error("session load", "err", err)
		os.Exit(1)
	}

	catalog := catalogadapter.NewAPICatalog(client)
	a := &app{
		cart:    cartapp.NewStore(ctx, store, log),
		session: holder,
		catalog: catalogapp.NewService(catalog, catalog),
		orders:  orderapp.NewService(orderadapter.NewAPIHistory(client)),
		client:  client,
	}
	a.checkout = checkoutapp.NewService(a.cart, checkoutadapter.NewAPIOrderPlacer(client), holder, log)

	if err := a.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", api.Message(err, err.Error()))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "menu":
		return a.showMenu(ctx)
	case "login":
		if len(args) != 3 {
			return errors.New("usage: uaifood login <email> <password>")
		}
		user, err := a.session.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", user.Name, user.Type)
		return nil
	case "logout":
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	case "cart":
		return a.runCart(ctx, args[1:])
	case "addresses":
		return a.showAddresses(ctx)
	case "checkout":
		if len(args) != 3 {
			return errors.New("usage: uaifood checkout <addressID> <payment>")
		}
		payment, err := checkoutdomain.ParsePaymentMethod(args[2])
		if err != nil {
			return err
		}
		orderID, err := a.checkout.Submit(ctx, args[1], payment)
		if err != nil {
			return err
		}
		fmt.Printf("order %s placed\n", orderID)
		return a.showOrders(ctx)
	case "orders":
		if len(args) == 2 {
			return a.showOrder(ctx, args[1])
		}
		return a.showOrders(ctx)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.showCart()
	}

	switch args[0] {
	case "show":
		return a.showCart()
	case "add":
		if len(args) < 2 {
			return errors.New("usage: uaifood cart add <itemID> [qty]")
		}
		qty := int64(1)
		if len(args) == 3 {
			n, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil || n < 1 {
				return fmt.Errorf("bad quantity %q", args[2])
			}
			qty = n
		}
		item, err := a.findItem(ctx, args[1])
		if err != nil {
			return err
		}
		line := catalogapp.CartLine(item)
		line.Quantity = qty
		if err := a.cart.AddItem(ctx, line); err != nil {
			return err
		}
		fmt.Printf("added %q x%d\n", item.Description, qty)
		return a.showCart()
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: uaifood cart rm <itemID>")
		}
		if err := a.cart.RemoveItem(ctx, args[1]); err != nil {
			return err
		}
		return a.showCart()
	case "qty":
		if len(args) != 3 {
			return errors.New("usage: uaifood cart qty <itemID> <n>")
		}
		n, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("bad quantity %q", args[2])
		}
		if err := a.cart.SetQuantity(ctx, args[1], n); err != nil {
			return err
		}
		return a.showCart()
	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("cart cleared")
		return nil
	default:
		return fmt.Errorf("unknown cart command %q", args[0])
	}
}

func (a *app) findItem(ctx context.Context, id string) (catalogdomain.Item, error) {
	sections, err := a.catalog.Menu(ctx)
	if err != nil {
		return catalogdomain.Item{}, err
	}
	for _, section := range sections {
		for _, it := range section.Items {
			if it.ID == id {
				return it, nil
			}
		}
	}
	return catalogdomain.Item{}, fmt.Errorf("item %q not on the menu", id)
}

func (a *app) showMenu(ctx context.Context) error {
	sections, err := a.catalog.Menu(ctx)
	if err != nil {
		return err
	}
	for _, section := range sections {
		fmt.Printf("%s\n", section.Category.Description)
		for _, it := range section.Items {
			fmt.Printf("  %-12s %-30s R$ %s\n", it.ID, it.Description, it.UnitPrice.StringFixed(2))
		}
	}
	return nil
}

func (a *app) showCart() error {
	snap := a.cart.Snapshot()
	if len(snap.Items) == 0 {
		fmt.Println("cart is empty")
		return nil
	}
	for _, it := range snap.Items {
		subtotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		fmt.Printf("  %-12s %-30s x%-3d R$ %s\n", it.ID, it.Description, it.Quantity, subtotal.StringFixed(2))
	}
	fmt.Printf("total: %d items, R$ %s\n", snap.TotalItems(), snap.TotalPrice().StringFixed(2))
	return nil
}

func (a *app) showAddresses(ctx context.Context) error {
	addresses, err := a.client.ListAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addresses) == 0 {
		fmt.Println("no addresses on file")
		return nil
	}
	for _, addr := range addresses {
		fmt.Printf("  %-12s %s, %s - %s, %s/%s\n",
			addr.ID, addr.Street, addr.Number, addr.District, addr.City, addr.State)
	}
	return nil
}

func (a *app) showOrders(ctx context.Context) error {
	orders, err := a.orders.ListMine(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Println("no orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("  %-12s %-11s %-7s %s  R$ %s\n",
			o.ID, o.Status, o.PaymentMethod, o.CreatedAt.Format("2006-01-02 15:04"), o.Total().StringFixed(2))
	}
	return nil
}

func (a *app) showOrder(ctx context.Context, id string) error {
	o, err := a.orders.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("order %s  %s  %s  %s\n", o.ID, o.Status, o.PaymentMethod, o.CreatedAt.Format("2006-01-02 15:04"))
	for _, l := range o.Lines {
		fmt.Printf("  %-30s x%-3d R$ %s\n", l.Description, l.Quantity, l.UnitPrice.StringFixed(2))
	}
	fmt.Printf("total: R$ %s\n", o.Total().StringFixed(2))
	return nil
}
