package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/MRxhaqq/Luxury-Hijabi/catalog"
	"github.com/MRxhaqq/Luxury-Hijabi/models"
	"github.com/MRxhaqq/Luxury-Hijabi/storage"
	"github.com/MRxhaqq/Luxury-Hijabi/stores/cart"
	"github.com/MRxhaqq/Luxury-Hijabi/stores/favorites"
	"github.com/MRxhaqq/Luxury-Hijabi/stores/recent"
	"github.com/MRxhaqq/Luxury-Hijabi/stores/session"
	"github.com/MRxhaqq/Luxury-Hijabi/stores/theme"
)

// A scripted storefront session against the real stores: sign up, browse,
// favorite, fill the cart, check out, export the order history. Useful as a
// smoke run and as living documentation of how the stores wire together.
func main() {
	log.Println("✅ Starting Luxury Hijabi storefront demo...")

	_ = godotenv.Load()

	db := openStorage()
	sessions := session.New(db, jwtSecret())
	carts := cart.New(db)
	favs := favorites.New(db, sessions.Scope)
	recents := recent.New(db, sessions.Scope)
	themes := theme.New(db, osThemePreference)

	unsubscribe := themes.Subscribe(func(mode models.Theme) {
		log.Printf("🎨 Theme switched to %s", mode)
	})
	defer unsubscribe()

	products, err := catalog.Load(envOr("CATALOG_PATH", "catalog.toml"))
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}
	if products.Len() == 0 {
		products = catalog.New(sampleProducts())
		log.Println("ℹ️ No catalog file found, using built-in sample products")
	}
	log.Printf("🛍️ Catalog ready with %d products", products.Len())

	// Sign up (registration auto-authenticates).
	account, err := sessions.Register(session.RegisterInput{
		Username: "amina",
		Email:    "amina@example.com",
		Password: "secret1",
	})
	if err != nil {
		// Re-run against an existing database: just sign in.
		account, err = sessions.Login(session.LoginInput{Identifier: "amina", Password: "secret1"})
		if err != nil {
			log.Fatalf("❌ Could not sign in: %v", err)
		}
	}
	log.Printf("👤 Signed in as %s <%s>", account.Username, account.Email)

	themes.Toggle()

	// Browse a few products, heart one of them.
	for _, p := range products.Products() {
		recents.Add(p)
	}
	if p, ok := products.Lookup("chiffon-classic"); ok {
		if nowFavorite := favs.Toggle(p); nowFavorite {
			log.Printf("💛 Added %s to favorites", p.Name)
		}
	}
	log.Printf("🕘 Recently viewed: %d entries", len(recents.List()))

	// Fill the cart. Adding the same product twice merges into one line.
	if p, ok := products.Lookup("chiffon-classic"); ok {
		carts.AddItem(p, 2)
		carts.AddItem(p, 1)
	}
	if p, ok := products.Lookup("satin-pearl"); ok {
		carts.AddItem(p, 1)
	}
	log.Printf("🛒 Cart has %d lines", len(carts.Items()))

	// Checkout. The UI-side promo discount is shown to the shopper but the
	// persisted order total stays pre-discount — observed storefront
	// behavior, kept on purpose.
	subtotal := carts.Subtotal(nil)
	log.Printf("💵 Checkout: subtotal %.2f, WELCOME10 shows a discount of %.2f", subtotal, subtotal*0.10)

	order, ok := carts.PlaceOrder(nil)
	if !ok {
		log.Fatalf("❌ Cart was unexpectedly empty at checkout")
	}
	log.Printf("📦 Order %s placed, total %.2f (%d lines)", order.ID, order.Total, len(order.Items))
	log.Printf("🛒 Cart now has %d lines, order history has %d orders", len(carts.Items()), len(carts.Orders()))

	exportOrders(carts)

	sessions.Logout()
	log.Println("👋 Signed out, demo complete")
}

// openStorage picks SQLite when STOREFRONT_DB is set, in-memory otherwise.
func openStorage() storage.Adapter {
	path := os.Getenv("STOREFRONT_DB")
	if path == "" {
		log.Println("ℹ️ STOREFRONT_DB not set, state will not survive this run")
		return storage.NewMemory()
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		log.Fatalf("❌ Failed to open storage at %s: %v", path, err)
	}
	log.Printf("💾 Storage ready at %s", path)
	return db
}

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("luxury-hijabi-dev-secret")
}

// osThemePreference maps a conventional env hint onto the theme enum; real
// OS integration belongs to whatever UI embeds these stores.
func osThemePreference() (models.Theme, bool) {
	switch os.Getenv("COLOR_SCHEME") {
	case "dark":
		return models.ThemeDark, true
	case "light":
		return models.ThemeLight, true
	}
	return "", false
}

func exportOrders(carts *cart.Store) {
	path := envOr("ORDERS_EXPORT", "orders.xlsx")
	file, err := os.Create(path)
	if err != nil {
		log.Printf("❌ Could not create %s: %v", path, err)
		return
	}
	defer file.Close()

	if err := carts.ExportOrders(file); err != nil {
		log.Printf("❌ Order export failed: %v", err)
		return
	}
	log.Printf("📊 Order history exported to %s", path)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "chiffon-classic", Name: "Classic Chiffon Hijab", Price: 24.99, Image: "/images/chiffon-classic.jpg", ShippingCost: 4.50},
		{ID: "satin-pearl", Name: "Pearl Satin Hijab", Price: 32.00, Image: "/images/satin-pearl.jpg", ShippingCost: 4.50},
		{ID: "jersey-everyday", Name: "Everyday Jersey Hijab", Price: 18.50, Image: "/images/jersey-everyday.jpg"},
		{ID: "silk-noir", Name: "Noir Silk Hijab", Price: 54.00, Image: "/images/silk-noir.jpg", ShippingCost: 6.00},
	}
}
