package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/op/go-logging"
	"github.com/restotrack/api/internal/config"
	"github.com/restotrack/api/internal/database"
	"github.com/restotrack/api/internal/enum"
	applog "github.com/restotrack/api/internal/logging"
	"github.com/shopspring/decimal"
)

var log = logging.MustGetLogger("seed")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := applog.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Criticalf("seed failed: %v", err)
		os.Exit(1)
	}
	log.Info("seed completed successfully")
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Seed in a transaction: all sample data or none
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	q := database.New(tx)
	if err := seedProfile(ctx, q); err != nil {
		return err
	}
	if err := seedStaff(ctx, q); err != nil {
		return err
	}
	if err := seedMenu(ctx, q); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// seedProfile creates the restaurant profile unless one is already saved.
func seedProfile(ctx context.Context, q *database.Queries) error {
	existing, err := q.GetRestaurantInfo(ctx)
	if err == nil {
		log.Infof("profile %q already exists, skipping", existing.Name)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check profile: %w", err)
	}

	info, err := q.UpsertRestaurantInfo(ctx, database.UpsertRestaurantInfoParams{
		Name:         "Karachi Grill House",
		Owner:        "Sana Qureshi",
		Phone:        "021-3456789",
		Email:        "info@karachigrill.pk",
		Address:      "Plot 12, Main Boulevard, Karachi",
		OpeningTime:  "11:00",
		ClosingTime:  "23:30",
		TypeDinein:   true,
		TypeTakeaway: true,
		TypeDelivery: false,
	})
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	log.Infof("created profile %q", info.Name)
	return nil
}

func seedStaff(ctx context.Context, q *database.Queries) error {
	existing, err := q.ListStaff(ctx)
	if err != nil {
		return fmt.Errorf("check staff: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("%d staff already registered, skipping", len(existing))
		return nil
	}

	joined := pgtype.Date{Time: time.Now(), Valid: true}
	staff := []database.CreateStaffParams{
		{Name: "Ali Raza", Role: enum.StaffRoleWaiter, Phone: "0300-1111111", Salary: money("35000"), Shift: enum.ShiftMorning, JoiningDate: joined},
		{Name: "Hamza Khan", Role: enum.StaffRoleWaiter, Phone: "0300-2222222", Salary: money("35000"), Shift: enum.ShiftEvening, JoiningDate: joined},
		{Name: "Bilal Ahmed", Role: enum.StaffRoleChef, Phone: "0300-3333333", Salary: money("60000"), Shift: enum.ShiftEvening, JoiningDate: joined},
		{Name: "Usman Tariq", Role: enum.StaffRoleKitchenStaff, Phone: "0300-4444444", Salary: money("30000"), Shift: enum.ShiftEvening, JoiningDate: joined},
		{Name: "Ayesha Malik", Role: enum.StaffRoleCashier, Phone: "0300-5555555", Salary: money("40000"), Shift: enum.ShiftMorning, JoiningDate: joined},
	}
	for _, s := range staff {
		if _, err := q.CreateStaff(ctx, s); err != nil {
			return fmt.Errorf("insert staff %s: %w", s.Name, err)
		}
	}
	log.Infof("created %d staff", len(staff))
	return nil
}

func seedMenu(ctx context.Context, q *database.Queries) error {
	existing, err := q.ListMenuItems(ctx)
	if err != nil {
		return fmt.Errorf("check menu: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("%d menu items already exist, skipping", len(existing))
		return nil
	}

	items := []database.CreateMenuItemParams{
		{FoodName: "Zinger Burger", Category: enum.CategoryFastFood, Price: money("8.00"), Available: true, PrepTime: 12},
		{FoodName: "Loaded Fries", Category: enum.CategoryFastFood, Price: money("4.50"), Available: true, PrepTime: 8},
		{FoodName: "Chicken Tikka", Category: enum.CategoryBBQ, Price: money("11.00"), Available: true, PrepTime: 20},
		{FoodName: "Seekh Kebab", Category: enum.CategoryBBQ, Price: money("9.50"), Available: true, PrepTime: 18},
		{FoodName: "Mint Margarita", Category: enum.CategoryDrinks, Price: money("3.00"), Available: true, PrepTime: 4},
		{FoodName: "Kheer", Category: enum.CategoryDessert, Price: money("3.50"), Available: false, PrepTime: 5},
	}
	for _, it := range items {
		if _, err := q.CreateMenuItem(ctx, it); err != nil {
			return fmt.Errorf("insert menu item %s: %w", it.FoodName, err)
		}
	}
	log.Infof("created %d menu items", len(items))
	return nil
}

func money(s string) pgtype.Numeric {
	var n pgtype.Numeric
	_ = n.Scan(decimal.RequireFromString(s).StringFixed(2))
	return n
}
