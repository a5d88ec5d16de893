// Command shopctl is a CLI storefront client for the flower-store backend.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/flicky/flowerstore-client/internal/api"
	"github.com/flicky/flowerstore-client/internal/config"
	"github.com/flicky/flowerstore-client/internal/event"
	"github.com/flicky/flowerstore-client/internal/geo"
	"github.com/flicky/flowerstore-client/internal/model"
	"github.com/flicky/flowerstore-client/internal/session"
)

func usage() {
	fmt.Fprintf(os.Stderr, `shopctl
Usage:
  shopctl <cmd> [args]

Commands:
  login        -email <e> -password <p>
  register     -first <f> -last <l> -mobile <m> -email <e> -password <p>
  logout
  whoami

  products     [-page N] [-size N]
  product      -id <productId>
  search       -name <text>
  categories

  cart
  cart-add     -product <id> -qty <n>
  cart-set     -product <id> -qty <n>
  cart-rm      -product <id>

  checkout     -address <addressId> -payment <paymentId>
  orders
  order        -id <orderId>
  order-rm     -id <orderId>

  addresses
  address-add  -street <s> -district <d> -city <c>
  address-set  -id <addressId> -street <s> -district <d> -city <c>
  address-rm   -id <addressId>

  profile
  profile-set  [-first <f>] [-last <l>] [-mobile <m>] [-avatar <file>]

  geocode      -lat <lat> -lng <lng>
  locate       -address <text>
  distance     -lat <lat> -lng <lng>
  direction    -lat <lat> -lng <lng>
  places       -q <text>
  place        -id <placeId>
`)
	os.Exit(2)
}

type app struct {
	session   *session.Store
	bus       *event.Bus
	auth      *api.AuthClient
	products  *api.ProductsClient
	categs    *api.CategoriesClient
	cart      *api.CartClient
	orders    *api.OrdersClient
	addresses *api.AddressesClient
	profile   *api.ProfileClient
	geo       *geo.Client
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	sess, err := session.Open(cfg.Session.Path)
	if err != nil {
		fail(err)
	}

	bus := event.NewBus()
	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, sess, log)
	a := &app{
		session:   sess,
		bus:       bus,
		auth:      api.NewAuthClient(client, bus),
		products:  api.NewProductsClient(client),
		categs:    api.NewCategoriesClient(client),
		cart:      api.NewCartClient(client, bus),
		orders:    api.NewOrdersClient(client, bus),
		addresses: api.NewAddressesClient(client),
		profile:   api.NewProfileClient(client, bus),
		geo:       geo.New(cfg.Map, log),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.run(ctx, flag.Arg(0), flag.Args()[1:])
}

func (a *app) run(ctx context.Context, cmd string, args []string) {
	switch cmd {

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		need(*email != "" && *password != "", "need -email and -password")

		resp, err := a.auth.Login(ctx, *email, *password)
		if err != nil {
			fail(err)
		}
		fmt.Printf("logged in as %s %s (userId=%d)\n", resp.User.FirstName, resp.User.LastName, resp.User.UserID)

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		first := fs.String("first", "", "first name")
		last := fs.String("last", "", "last name")
		mobile := fs.String("mobile", "", "mobile number")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		need(*first != "" && *last != "" && *mobile != "" && *email != "" && *password != "",
			"need -first -last -mobile -email -password")

		resp, err := a.auth.Register(ctx, *first, *last, *mobile, *email, *password)
		if err != nil {
			fail(err)
		}
		fmt.Printf("registered userId=%d\n", resp.User.UserID)

	case "logout":
		a.auth.Logout()
		fmt.Println("ok")

	case "whoami":
		user := a.session.User()
		if user == nil {
			fmt.Println("not logged in")
			return
		}
		printJSON(user)
		if exp := a.session.TokenExpiry(); !exp.IsZero() && time.Now().After(exp) {
			fmt.Fprintln(os.Stderr, "token expired, login again")
		}

	case "products":
		fs := flag.NewFlagSet("products", flag.ExitOnError)
		page := fs.Int("page", 1, "page number")
		size := fs.Int("size", 10, "page size")
		_ = fs.Parse(args)

		result, err := a.products.List(ctx, *page, *size)
		if err != nil {
			fail(err)
		}
		printJSON(result)

	case "product":
		fs := flag.NewFlagSet("product", flag.ExitOnError)
		id := fs.Int64("id", 0, "product id")
		_ = fs.Parse(args)
		need(*id != 0, "need -id")

		product, err := a.products.GetByID(ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(product)

	case "search":
		fs := flag.NewFlagSet("search", flag.ExitOnError)
		name := fs.String("name", "", "product name")
		_ = fs.Parse(args)
		need(*name != "", "need -name")

		products, err := a.products.SearchByName(ctx, *name)
		if err != nil {
			fail(err)
		}
		printJSON(products)

	case "categories":
		categories, err := a.categs.List(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(categories)

	case "cart":
		cart, err := a.cart.Get(ctx, a.userID())
		if err != nil {
			fail(err)
		}
		printJSON(cart)

	case "cart-add":
		fs := flag.NewFlagSet("cart-add", flag.ExitOnError)
		product := fs.Int64("product", 0, "product id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(args)
		need(*product != 0, "need -product")

		cart, err := a.cart.Add(ctx, a.userID(), *product, *qty)
		if err != nil {
			fail(err)
		}
		printJSON(cart)

	case "cart-set":
		fs := flag.NewFlagSet("cart-set", flag.ExitOnError)
		product := fs.Int64("product", 0, "product id")
		qty := fs.Int("qty", 1, "quantity")
		_ = fs.Parse(args)
		need(*product != 0, "need -product")

		cart, err := a.cart.UpdateItem(ctx, a.userID(), *product, *qty)
		if err != nil {
			fail(err)
		}
		printJSON(cart)

	case "cart-rm":
		fs := flag.NewFlagSet("cart-rm", flag.ExitOnError)
		product := fs.Int64("product", 0, "product id")
		_ = fs.Parse(args)
		need(*product != 0, "need -product")

		cart, err := a.cart.Remove(ctx, a.userID(), *product)
		if err != nil {
			fail(err)
		}
		printJSON(cart)

	case "checkout":
		fs := flag.NewFlagSet("checkout", flag.ExitOnError)
		address := fs.Int64("address", 0, "address id")
		payment := fs.Int64("payment", 1, "payment method id")
		_ = fs.Parse(args)
		need(*address != 0, "need -address")

		created, err := a.orders.Create(ctx, a.userID(), *address, *payment)
		if err != nil {
			fail(err)
		}
		printJSON(created)

	case "orders":
		orders, err := a.orders.List(ctx, a.userID())
		if err != nil {
			fail(err)
		}
		printJSON(orders)

	case "order":
		fs := flag.NewFlagSet("order", flag.ExitOnError)
		id := fs.Int64("id", 0, "order id")
		_ = fs.Parse(args)
		need(*id != 0, "need -id")

		order, err := a.orders.Get(ctx, a.userID(), *id)
		if err != nil {
			fail(err)
		}
		printJSON(order)

	case "order-rm":
		fs := flag.NewFlagSet("order-rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "order id")
		_ = fs.Parse(args)
		need(*id != 0, "need -id")

		if err := a.orders.Delete(ctx, a.userID(), *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "addresses":
		addrs, err := a.addresses.List(ctx, a.userID())
		if err != nil {
			fail(err)
		}
		printJSON(addrs)

	case "address-add":
		fs := flag.NewFlagSet("address-add", flag.ExitOnError)
		street := fs.String("street", "", "street")
		district := fs.String("district", "", "district")
		city := fs.String("city", "", "city")
		_ = fs.Parse(args)
		need(*street != "" && *district != "" && *city != "", "need -street -district -city")

		addr, err := a.addresses.Create(ctx, a.userID(), model.Address{
			Street: *street, District: *district, City: *city,
		})
		if err != nil {
			fail(err)
		}
		printJSON(addr)

	case "address-set":
		fs := flag.NewFlagSet("address-set", flag.ExitOnError)
		id := fs.Int64("id", 0, "address id")
		street := fs.String("street", "", "street")
		district := fs.String("district", "", "district")
		city := fs.String("city", "", "city")
		_ = fs.Parse(args)
		need(*id != 0 && *street != "" && *district != "" && *city != "",
			"need -id -street -district -city")

		addr, err := a.addresses.Update(ctx, a.userID(), *id, model.Address{
			Street: *street, District: *district, City: *city,
		})
		if err != nil {
			fail(err)
		}
		printJSON(addr)

	case "address-rm":
		fs := flag.NewFlagSet("address-rm", flag.ExitOnError)
		id := fs.Int64("id", 0, "address id")
		_ = fs.Parse(args)
		need(*id != 0, "need -id")

		if err := a.addresses.Delete(ctx, a.userID(), *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "profile":
		profile, err := a.profile.Get(ctx, a.userID())
		if err != nil {
			fail(err)
		}
		printJSON(profile)

	case "profile-set":
		fs := flag.NewFlagSet("profile-set", flag.ExitOnError)
		first := fs.String("first", "", "first name (empty keeps current)")
		last := fs.String("last", "", "last name (empty keeps current)")
		mobile := fs.String("mobile", "", "mobile number (empty keeps current)")
		avatar := fs.String("avatar", "", "avatar image file")
		_ = fs.Parse(args)

		upd := api.ProfileUpdate{FirstName: *first, LastName: *last, MobileNumber: *mobile}
		if *avatar != "" {
			data, err := os.ReadFile(*avatar)
			if err != nil {
				fail(err)
			}
			upd.Avatar = data
			upd.AvatarName = filepath.Base(*avatar)
		}

		profile, err := a.profile.Update(ctx, a.userID(), upd)
		if err != nil {
			fail(err)
		}
		printJSON(profile)

	case "geocode":
		fs := flag.NewFlagSet("geocode", flag.ExitOnError)
		lat := fs.Float64("lat", 0, "latitude")
		lng := fs.Float64("lng", 0, "longitude")
		_ = fs.Parse(args)
		if resp := a.geo.ReverseGeocode(ctx, *lat, *lng); resp != nil {
			printJSON(resp)
		} else {
			fmt.Println("no map data available")
		}

	case "locate":
		fs := flag.NewFlagSet("locate", flag.ExitOnError)
		address := fs.String("address", "", "free-text address")
		_ = fs.Parse(args)
		need(*address != "", "need -address")
		if resp := a.geo.ForwardGeocode(ctx, *address); resp != nil {
			printJSON(resp)
		} else {
			fmt.Println("no map data available")
		}

	case "distance":
		fs := flag.NewFlagSet("distance", flag.ExitOnError)
		lat := fs.Float64("lat", 0, "latitude")
		lng := fs.Float64("lng", 0, "longitude")
		_ = fs.Parse(args)
		if resp := a.geo.DistanceToShop(ctx, *lat, *lng); resp != nil {
			printJSON(resp)
		} else {
			fmt.Println("no map data available")
		}

	case "direction":
		fs := flag.NewFlagSet("direction", flag.ExitOnError)
		lat := fs.Float64("lat", 0, "latitude")
		lng := fs.Float64("lng", 0, "longitude")
		_ = fs.Parse(args)
		if resp := a.geo.DirectionToShop(ctx, *lat, *lng); resp != nil {
			printJSON(resp)
		} else {
			fmt.Println("no map data available")
		}

	case "places":
		fs := flag.NewFlagSet("places", flag.ExitOnError)
		q := fs.String("q", "", "search text")
		_ = fs.Parse(args)
		need(*q != "", "need -q")
		if preds := a.geo.SearchPlaces(ctx, *q); preds != nil {
			printJSON(preds)
		} else {
			fmt.Println("no map data available")
		}

	case "place":
		fs := flag.NewFlagSet("place", flag.ExitOnError)
		id := fs.String("id", "", "place id")
		_ = fs.Parse(args)
		need(*id != "", "need -id")
		if detail := a.geo.PlaceDetail(ctx, *id); detail != nil {
			printJSON(detail)
		} else {
			fmt.Println("no map data available")
		}

	default:
		usage()
	}
}

// userID resolves the acting user from the session; most /users endpoints
// are keyed by it.
func (a *app) userID() int64 {
	user := a.session.User()
	if user == nil {
		fail(errors.New("not logged in"))
	}
	return user.UserID
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func need(ok bool, msg string) {
	if !ok {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

func fail(err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "api error: status=%d msg=%s\n", apiErr.StatusCode, apiErr.Error())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
