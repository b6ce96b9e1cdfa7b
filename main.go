package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"slicehub/config"
	"slicehub/models"
	"slicehub/recommend"
	"slicehub/seed"
	"slicehub/statemachine"
	"slicehub/store"
)

// app is the terminal storefront. It owns only transient view state;
// everything authoritative lives in the store.
type app struct {
	store *store.Store
	chef  *recommend.Service
	in    *bufio.Scanner
	out   *os.File
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	st := store.New(seed.Menu(), seed.Orders(), logger)
	chef := recommend.NewService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, st.Menu(), logger)

	a := &app{
		store: st,
		chef:  chef,
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
	}
	a.run()
}

func (a *app) run() {
	fmt.Fprintln(a.out, "Welcome to SliceHub")
	for {
		user, ok := a.store.CurrentUser()
		switch {
		case !ok:
			if !a.guestMenu() {
				return
			}
		case user.Role == models.RoleAdmin:
			if !a.adminMenu(user) {
				return
			}
		default:
			if !a.customerMenu(user) {
				return
			}
		}
	}
}

// guestMenu runs until login or quit. Returns false to exit.
func (a *app) guestMenu() bool {
	fmt.Fprintln(a.out, "\n[1] Browse menu  [2] Log in  [q] Quit")
	switch a.prompt("> ") {
	case "1":
		a.printMenu()
	case "2":
		a.login()
	case "q":
		return false
	}
	return true
}

func (a *app) customerMenu(user models.User) bool {
	fmt.Fprintf(a.out, "\n%s | cart total $%.2f\n", user.Name, a.store.CartTotal())
	fmt.Fprintln(a.out, "[1] Menu  [2] Add item  [3] Cart  [4] Change quantity  [5] Remove item")
	fmt.Fprintln(a.out, "[6] Checkout  [7] My orders  [8] Ask the AI chef  [9] Log out  [q] Quit")
	switch a.prompt("> ") {
	case "1":
		a.printMenu()
	case "2":
		a.addItem()
	case "3":
		a.printCart()
	case "4":
		a.changeQuantity()
	case "5":
		a.store.RemoveFromCart(a.prompt("item id: "))
	case "6":
		a.checkout()
	case "7":
		a.printOrders(user.ID)
	case "8":
		a.askChef()
	case "9":
		a.store.Logout()
	case "q":
		return false
	}
	return true
}

func (a *app) adminMenu(user models.User) bool {
	fmt.Fprintf(a.out, "\nadmin: %s\n", user.Name)
	fmt.Fprintln(a.out, "[1] Dashboard  [2] All orders  [3] Update order status  [4] Log out  [q] Quit")
	switch a.prompt("> ") {
	case "1":
		a.printDashboard()
	case "2":
		a.printOrders("")
	case "3":
		a.updateStatus(user)
	case "4":
		a.store.Logout()
	case "q":
		return false
	}
	return true
}

func (a *app) login() {
	name := a.prompt("name: ")
	if name == "" {
		return
	}
	user := a.store.Login(name, models.RoleCustomer)
	fmt.Fprintf(a.out, "logged in as %s (%s)\n", user.Name, user.Role)
}

func (a *app) printMenu() {
	for _, item := range a.store.Menu() {
		fmt.Fprintf(a.out, "  %-2s %-20s $%-5.2f %-8s spice %d/3  %.1f★\n",
			item.ID, item.Name, item.Price, item.Category, item.Spiciness, item.Rating)
		fmt.Fprintf(a.out, "     %s\n", item.Description)
	}
}

func (a *app) addItem() {
	id := a.prompt("item id: ")
	for _, item := range a.store.Menu() {
		if item.ID == id {
			a.store.AddToCart(item)
			fmt.Fprintf(a.out, "added %s\n", item.Name)
			return
		}
	}
	fmt.Fprintln(a.out, "no such item")
}

func (a *app) printCart() {
	lines := a.store.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "cart is empty")
		return
	}
	for _, line := range lines {
		fmt.Fprintf(a.out, "  %s x%d  $%.2f\n", line.Item.Name, line.Quantity, line.Subtotal())
	}
	fmt.Fprintf(a.out, "  total: $%.2f\n", a.store.CartTotal())
}

func (a *app) changeQuantity() {
	id := a.prompt("item id: ")
	delta, err := strconv.Atoi(a.prompt("delta (e.g. 1 or -1): "))
	if err != nil {
		fmt.Fprintln(a.out, "not a number")
		return
	}
	a.store.UpdateQuantity(id, delta)
}

func (a *app) checkout() {
	details := store.OrderDetails{
		DeliveryAddress: a.prompt("delivery address: "),
		Payment:         models.PaymentMethod(a.prompt("payment (card/upi/cod): ")),
	}
	order, err := a.store.PlaceOrder(details)
	switch {
	case errors.Is(err, store.ErrNoActiveSession):
		fmt.Fprintln(a.out, "please log in first")
		a.login()
	case err != nil:
		fmt.Fprintln(a.out, "checkout failed:", err)
	default:
		fmt.Fprintf(a.out, "order %s placed, total $%.2f\n", order.ID, order.Total)
	}
}

func (a *app) printOrders(userID string) {
	for _, o := range a.store.Orders() {
		if userID != "" && o.UserID != userID {
			continue
		}
		fmt.Fprintf(a.out, "  %s  %-16s $%-7.2f %s  %s\n",
			o.ID, o.Status, o.Total, o.PlacedAt.Format("2006-01-02 15:04"), o.DeliveryAddress)
	}
}

func (a *app) printDashboard() {
	summary := a.store.Analytics()
	fmt.Fprintf(a.out, "total revenue: $%.2f\n", summary.TotalRevenue)
	fmt.Fprintf(a.out, "active orders: %d\n", summary.ActiveOrders)
	for _, status := range statemachine.Statuses() {
		fmt.Fprintf(a.out, "  %-16s %d\n", status, summary.StatusCounts[status])
	}
	fmt.Fprintln(a.out, "revenue by weekday:")
	for d := time.Sunday; d <= time.Saturday; d++ {
		if v := summary.RevenueByWeekday[d]; v > 0 {
			fmt.Fprintf(a.out, "  %-9s $%.2f\n", d, v)
		}
	}
}

func (a *app) updateStatus(admin models.User) {
	orderID := a.prompt("order id: ")
	statuses := statemachine.Statuses()
	for i, s := range statuses {
		fmt.Fprintf(a.out, "[%d] %s  ", i+1, s)
	}
	fmt.Fprintln(a.out)
	choice, err := strconv.Atoi(a.prompt("> "))
	if err != nil || choice < 1 || choice > len(statuses) {
		fmt.Fprintln(a.out, "no such status")
		return
	}
	a.store.UpdateOrderStatus(orderID, statuses[choice-1], admin.ID, "set from admin console")
}

func (a *app) askChef() {
	preference := a.prompt("what are you craving? ")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fmt.Fprintln(a.out, a.chef.Recommend(ctx, preference))
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(a.in.Text())
}
