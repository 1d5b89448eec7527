package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"foodrepublic/internal/cart"
	"foodrepublic/internal/config"
	"foodrepublic/internal/domain"
	"foodrepublic/internal/posapi"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pos <command> [arguments]

Commands:
  tables                              list dining tables
  menu <category>                     list catalog items for a category
  show <table>                        show the cart for a table
  add <table> <category> <item>       add one unit of an item to a table's cart
  remove <table> <item-id>            remove a line from a table's cart
  checkout <table> [-phone N] [-yes]  finalize a table's order
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stderr, "[pos] ", log.LstdFlags)

	client := posapi.New(cfg.POSAPIBaseURL, logger)
	engine := cart.NewEngine(cart.NewFileStore(cfg.CartSnapshotPath), client, logger)

	ctx := context.Background()
	args := os.Args[2:]

	var err error
	switch os.Args[1] {
	case "tables":
		err = listTables(ctx, client)
	case "menu":
		err = listMenu(ctx, client, args)
	case "show":
		err = showCart(engine, args)
	case "add":
		err = addItem(ctx, client, engine, args)
	case "remove":
		err = removeLine(engine, args)
	case "checkout":
		err = checkout(ctx, client, engine, args)
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func listTables(ctx context.Context, client *posapi.Client) error {
	tables, err := client.Tables(ctx)
	if err != nil {
		return err
	}
	for _, t := range tables {
		fmt.Println(t.Name)
	}
	return nil
}

func listMenu(ctx context.Context, client *posapi.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("expected a category argument")
	}
	items, err := client.MenuItems(ctx, args[0])
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Printf("%-36s  %-24s  %s\n", it.ID, domain.DisplayName(it.ItemName), formatCents(it.ItemPrice))
	}
	return nil
}

func showCart(engine *cart.Engine, args []string) error {
	if len(args) != 1 {
		return errors.New("expected a table argument")
	}
	tableName := args[0]

	count := 0
	for line := range engine.State().TableLines(tableName) {
		fmt.Printf("%-36s  %-24s  %3d x %s\n",
			line.ItemID, domain.DisplayName(line.ItemName), line.Quantity, formatCents(line.UnitPrice))
		count++
	}
	if count == 0 {
		fmt.Printf("cart for %s is empty\n", tableName)
		return nil
	}
	fmt.Printf("total: %s\n", formatCents(engine.TableTotal(tableName)))
	return nil
}

func addItem(ctx context.Context, client *posapi.Client, engine *cart.Engine, args []string) error {
	if len(args) != 3 {
		return errors.New("expected table, category and item arguments")
	}
	tableName, category, rawName := args[0], args[1], args[2]

	items, err := client.MenuItems(ctx, category)
	if err != nil {
		return err
	}

	name := domain.NormalizeItemName(rawName)
	for _, it := range items {
		if it.ItemName == name {
			if err := engine.AddItem(cart.Item{ID: it.ID, Name: it.ItemName, UnitPrice: it.ItemPrice}, tableName); err != nil {
				return err
			}
			fmt.Printf("added %s to %s\n", domain.DisplayName(it.ItemName), tableName)
			return nil
		}
	}
	return fmt.Errorf("item %q not found in %s", rawName, category)
}

func removeLine(engine *cart.Engine, args []string) error {
	if len(args) != 2 {
		return errors.New("expected table and item-id arguments")
	}
	if !engine.RemoveLine(args[1], args[0]) {
		return fmt.Errorf("no line for item %s on %s", args[1], args[0])
	}
	fmt.Println("removed")
	return nil
}

func checkout(ctx context.Context, client *posapi.Client, engine *cart.Engine, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	phone := fs.String("phone", "", "member phone number for discount lookup")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if len(args) < 1 {
		return errors.New("expected a table argument")
	}
	tableName := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var quote cart.Quote
	if *phone != "" {
		resolver := cart.NewResolver(client.MemberDiscount)
		q, err := resolver.Resolve(ctx, *phone)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Println("no membership found, proceeding without discount")
		} else if err != nil {
			fmt.Printf("membership lookup failed (%v), proceeding without discount\n", err)
		} else {
			quote = q
			fmt.Printf("member discount: %d%%\n", q.Percent)
		}
	}

	total := engine.TableTotal(tableName)
	discount := cart.Apply(total, quote)
	fmt.Printf("table %s: bill %s, discount %s\n", tableName, formatCents(total), formatCents(discount))

	confirm := func() bool { return true }
	if !*yes {
		confirm = func() bool {
			fmt.Print("confirm checkout? [y/N] ")
			answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			return strings.EqualFold(strings.TrimSpace(answer), "y")
		}
	}

	id, err := engine.Checkout(ctx, tableName, quote, confirm)
	if errors.Is(err, cart.ErrCheckoutDeclined) {
		fmt.Println("checkout cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("invoice %s created\n", id)
	return nil
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
