package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sneha3498/infosysproject/internal/adapter/rest"
	"github.com/sneha3498/infosysproject/internal/adapter/sensor"
	"github.com/sneha3498/infosysproject/internal/adapter/storage"
	"github.com/sneha3498/infosysproject/internal/config"
	"github.com/sneha3498/infosysproject/internal/entity"
	"github.com/sneha3498/infosysproject/internal/platform/logger"
	"github.com/sneha3498/infosysproject/internal/port"
	"github.com/sneha3498/infosysproject/internal/usecase/admin"
	"github.com/sneha3498/infosysproject/internal/usecase/category"
	"github.com/sneha3498/infosysproject/internal/usecase/listing"
	"github.com/sneha3498/infosysproject/internal/usecase/profile"
	"github.com/sneha3498/infosysproject/internal/usecase/search"
	"github.com/sneha3498/infosysproject/internal/usecase/session"
)

const usage = `Usage: marketplace <command> [flags]

Commands:
  login            Sign in and persist the session
  signup           Register a new account
  logout           Clear the persisted session
  whoami           Show the current session
  categories       List service categories
  search           Search providers near the current location
  listings         List your own listings
  create           Create a listing
  update           Update a listing
  delete           Delete a listing
  toggle           Flip a listing's disabled flag (local preview only)
  profile          Show a user profile
  update-profile   Update profile fields
  set-location     Set the permanent location
  approve          Approve a listing (admin)
  reject           Reject a listing (admin)
  create-category  Create a category (admin)
`

type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	sessions  *session.Manager
	directory *category.Directory
	searchFl  *search.Flow
	listings  *listing.Manager
	profiles  *profile.Manager
	admin     *admin.Flow
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	cfg, err := config.LoadConfig(os.Getenv("MARKET_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	store, err := buildSessionStore(ctx, cfg)
	if err != nil {
		zl.Fatal("Failed to build session store", zap.Error(err))
	}

	client := rest.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, zl)
	sessions := session.NewManager(client, store, zl)
	directory := category.NewDirectory(client, zl)

	a := &app{
		cfg:       cfg,
		logger:    zl,
		sessions:  sessions,
		directory: directory,
		searchFl:  search.NewFlow(buildSensor(cfg, zl), client, zl),
		listings:  listing.NewManager(client, directory, zl),
		profiles:  profile.NewManager(client, zl),
		admin:     admin.NewFlow(client, sessions, zl),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildSessionStore(ctx context.Context, cfg *config.Config) (port.SessionStore, error) {
	switch cfg.Storage.Driver {
	case "redis":
		client, err := storage.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, cfg.Storage.Profile, cfg.Storage.TTL), nil
	case "file", "":
		return storage.NewFileStore(cfg.Storage.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func buildSensor(cfg *config.Config, zl *zap.Logger) port.LocationSensor {
	switch cfg.Sensor.Driver {
	case "static":
		return sensor.NewStatic(cfg.Sensor.Latitude, cfg.Sensor.Longitude)
	case "geoip":
		return sensor.NewGeoIP(cfg.Sensor.GeoIPEndpoint, cfg.Sensor.Timeout, zl)
	default:
		return sensor.NewUnsupported()
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "signup":
		return a.signup(ctx, args)
	case "logout":
		return a.sessions.Logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "categories":
		return a.categories(ctx)
	case "search":
		return a.search(ctx, args)
	case "listings":
		return a.listListings(ctx, args)
	case "create":
		return a.createListing(ctx, args)
	case "update":
		return a.updateListing(ctx, args)
	case "delete":
		return a.deleteListing(ctx, args)
	case "toggle":
		return a.toggleListing(ctx, args)
	case "profile":
		return a.showProfile(ctx, args)
	case "update-profile":
		return a.updateProfile(ctx, args)
	case "set-location":
		return a.setLocation(ctx, args)
	case "approve":
		return a.moderate(ctx, args, a.admin.ApproveListing)
	case "reject":
		return a.moderate(ctx, args, a.admin.RejectListing)
	case "create-category":
		return a.createCategory(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	role := fs.String("role", string(entity.RoleCustomer), "CUSTOMER or PROVIDER")
	fs.Parse(args)

	sess, err := a.sessions.Login(ctx, *email, *password, entity.Role(*role))
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as user %s (%s)\n", sess.UserID, sess.Role)
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	confirm := fs.String("confirm", "", "password confirmation")
	role := fs.String("role", string(entity.RoleCustomer), "CUSTOMER or PROVIDER")
	lat := fs.String("lat", "", "optional latitude")
	lng := fs.String("lng", "", "optional longitude")
	address := fs.String("address", "", "optional address")
	fs.Parse(args)

	form := entity.SignupForm{
		UserName:        *name,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *confirm,
		Role:            entity.Role(*role),
		Address:         *address,
	}
	if *lat != "" && *lng != "" {
		latVal, err := strconv.ParseFloat(*lat, 64)
		if err != nil {
			return fmt.Errorf("%w: bad latitude %q", entity.ErrValidation, *lat)
		}
		lngVal, err := strconv.ParseFloat(*lng, 64)
		if err != nil {
			return fmt.Errorf("%w: bad longitude %q", entity.ErrValidation, *lng)
		}
		form.Latitude = &latVal
		form.Longitude = &lngVal
	}

	sess, err := a.sessions.Signup(ctx, form)
	if err != nil {
		return err
	}
	fmt.Printf("Registered as user %s (%s)\n", sess.UserID, sess.Role)
	return nil
}

func (a *app) whoami(ctx context.Context) error {
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if sess.IsAnonymous() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("User %s (%s) %s\n", sess.UserID, sess.Role, sess.DisplayName)
	return nil
}

func (a *app) categories(ctx context.Context) error {
	categories, err := a.directory.List(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories available.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%s\t%s\n", c.ID, c.Name)
	}
	return nil
}

func (a *app) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	categoryID := fs.String("category", "", "category id")
	lat := fs.String("lat", "", "override latitude")
	lng := fs.String("lng", "", "override longitude")
	fs.Parse(args)

	a.searchFl.SelectCategory(*categoryID)

	if *lat != "" && *lng != "" {
		latVal, err := strconv.ParseFloat(*lat, 64)
		if err != nil {
			return fmt.Errorf("%w: bad latitude %q", entity.ErrValidation, *lat)
		}
		lngVal, err := strconv.ParseFloat(*lng, 64)
		if err != nil {
			return fmt.Errorf("%w: bad longitude %q", entity.ErrValidation, *lng)
		}
		a.searchFl.SetCoordinates(entity.Coordinates{Latitude: latVal, Longitude: lngVal})
	} else if err := a.searchFl.AcquireLocation(ctx); err != nil {
		fmt.Println(a.searchFl.LocationStatus())
		return err
	}
	fmt.Println(a.searchFl.LocationStatus())

	results, err := a.searchFl.SubmitSearch(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No services found. Try a different category.")
		return nil
	}
	for _, r := range results {
		distance := "nearby"
		if r.Distance != nil {
			distance = fmt.Sprintf("%.1f km away", *r.Distance)
		}
		fmt.Printf("%s\t%s\t%.2f\t%s\n", r.ID, r.Title, r.Price, distance)
	}
	return nil
}

func (a *app) providerID(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	sess, err := a.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	if sess.IsAnonymous() {
		return "", fmt.Errorf("%w: log in first", entity.ErrValidation)
	}
	return sess.UserID, nil
}

func (a *app) listListings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("listings", flag.ExitOnError)
	provider := fs.String("provider", "", "provider id (defaults to the session user)")
	fs.Parse(args)

	id, err := a.providerID(ctx, *provider)
	if err != nil {
		return err
	}
	if err := a.listings.Load(ctx, id); err != nil {
		return err
	}
	all := a.listings.Listings()
	if len(all) == 0 {
		fmt.Println("You haven't listed any services yet.")
		return nil
	}
	for _, l := range all {
		state := ""
		if l.Disabled {
			state = "\t(disabled)"
		}
		fmt.Printf("%s\t%s\t%.2f%s\n", l.ID, l.Title, l.Price, state)
	}
	return nil
}

func draftFlags(fs *flag.FlagSet) (title, description *string, price *float64, categoryID, image *string) {
	title = fs.String("title", "", "listing title")
	description = fs.String("description", "", "listing description")
	price = fs.Float64("price", 0, "listing price")
	categoryID = fs.String("category", "", "category id")
	image = fs.String("image", "", "path to an image file")
	return
}

func openImage(path string) (*entity.ImageUpload, *os.File, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	return &entity.ImageUpload{FileName: filepath.Base(path), Content: f}, f, nil
}

func (a *app) createListing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	title, description, price, categoryID, image := draftFlags(fs)
	fs.Parse(args)

	id, err := a.providerID(ctx, "")
	if err != nil {
		return err
	}
	upload, f, err := openImage(*image)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	created, err := a.listings.Create(ctx, id, entity.ListingDraft{
		Title:       *title,
		Description: *description,
		Price:       *price,
		CategoryID:  *categoryID,
		Image:       upload,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Listing %s created.\n", created.ID)
	return nil
}

func (a *app) updateListing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.String("id", "", "listing id")
	title, description, price, categoryID, image := draftFlags(fs)
	fs.Parse(args)

	upload, f, err := openImage(*image)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	updated, err := a.listings.Update(ctx, *id, entity.ListingDraft{
		Title:       *title,
		Description: *description,
		Price:       *price,
		CategoryID:  *categoryID,
		Image:       upload,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Listing %s updated.\n", updated.ID)
	return nil
}

func (a *app) deleteListing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "listing id")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	fs.Parse(args)

	if !*yes && !confirm(fmt.Sprintf("Delete listing %s? There is no undo.", *id)) {
		fmt.Println("Aborted.")
		return nil
	}
	if err := a.listings.Delete(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("Listing %s deleted.\n", *id)
	return nil
}

func (a *app) toggleListing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	id := fs.String("id", "", "listing id")
	fs.Parse(args)

	providerID, err := a.providerID(ctx, "")
	if err != nil {
		return err
	}
	if err := a.listings.Load(ctx, providerID); err != nil {
		return err
	}
	disabled, err := a.listings.ToggleDisabled(*id)
	if err != nil {
		return err
	}
	if disabled {
		fmt.Printf("Listing %s disabled (local preview only).\n", *id)
	} else {
		fmt.Printf("Listing %s enabled (local preview only).\n", *id)
	}
	return nil
}

func (a *app) showProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	id := fs.String("id", "", "user id (defaults to the session user)")
	fs.Parse(args)

	userID, err := a.providerID(ctx, *id)
	if err != nil {
		return err
	}
	user, err := a.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%s\t%s\n", user.ID, user.UserName, user.Email, user.Role)
	if user.PermanentAddress != "" {
		fmt.Printf("Address: %s\n", user.PermanentAddress)
	}
	return nil
}

func (a *app) updateProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-profile", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	number := fs.Int64("number", 0, "phone number")
	image := fs.String("image", "", "path to an avatar file")
	fs.Parse(args)

	userID, err := a.providerID(ctx, "")
	if err != nil {
		return err
	}
	upload, f, err := openImage(*image)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
	}

	user, err := a.profiles.UpdateProfile(ctx, userID, entity.ProfileUpdate{
		UserName: *name,
		Email:    *email,
		Number:   *number,
		Image:    upload,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Profile for user %s updated.\n", user.ID)
	return nil
}

func (a *app) setLocation(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-location", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "latitude")
	lng := fs.Float64("lng", 0, "longitude")
	address := fs.String("address", "", "address")
	fs.Parse(args)

	userID, err := a.providerID(ctx, "")
	if err != nil {
		return err
	}
	user, err := a.profiles.UpdateLocation(ctx, userID, entity.LocationUpdate{
		Latitude:  *lat,
		Longitude: *lng,
		Address:   *address,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Location for user %s updated.\n", user.ID)
	return nil
}

func (a *app) moderate(ctx context.Context, args []string, action func(context.Context, string) error) error {
	fs := flag.NewFlagSet("moderate", flag.ExitOnError)
	id := fs.String("id", "", "listing id")
	fs.Parse(args)
	return action(ctx, *id)
}

func (a *app) createCategory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-category", flag.ExitOnError)
	name := fs.String("name", "", "category name")
	description := fs.String("description", "", "category description")
	fs.Parse(args)

	created, err := a.admin.CreateCategory(ctx, *name, *description)
	if err != nil {
		return err
	}
	fmt.Printf("Category %s (%s) created.\n", created.ID, created.Name)
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
