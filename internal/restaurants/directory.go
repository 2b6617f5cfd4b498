// Package restaurants registers restaurants and checks their credentials.
package restaurants

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"dinewise/internal/apperr"
	"dinewise/internal/auth"
	"dinewise/internal/hours"
	"dinewise/internal/models"

	"gorm.io/gorm"
)

type SignupRequest struct {
	Name         string
	UserID       string
	Password     string
	Location     string
	Cuisine      string
	Phone        string
	Website      string
	Description  string
	OpeningHours []hours.Rule
}

// UpdateRequest changes only the fields that are non-nil.
type UpdateRequest struct {
	Name        *string
	Location    *string
	Cuisine     *string
	UserID      *string
	Password    *string
	Phone       *string
	Website     *string
	Description *string
}

type Directory struct {
	db        *gorm.DB
	passwords auth.PasswordHasher
	log       *slog.Logger
}

func NewDirectory(db *gorm.DB, passwords auth.PasswordHasher, log *slog.Logger) *Directory {
	if passwords == nil {
		passwords = auth.Plain{}
	}
	return &Directory{db: db, passwords: passwords, log: log}
}

// Signup creates a restaurant and, if given, its opening hours in one transaction.
func (d *Directory) Signup(ctx context.Context, req SignupRequest) (*models.Restaurant, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("name", "is required")
	}
	if strings.TrimSpace(req.UserID) == "" {
		return nil, apperr.Validation("userid", "is required")
	}
	if req.Password == "" {
		return nil, apperr.Validation("password", "is required")
	}
	if err := hours.ValidateRules(req.OpeningHours); err != nil {
		return nil, err
	}

	stored, err := d.passwords.Hash(req.Password)
	if err != nil {
		return nil, apperr.Store("hash password", err)
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		UserID:      req.UserID,
		Password:    stored,
		Location:    req.Location,
		Cuisine:     req.Cuisine,
		Phone:       req.Phone,
		Website:     req.Website,
		Description: req.Description,
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUserIDFree(tx, req.UserID, 0); err != nil {
			return err
		}
		if err := tx.Create(&restaurant).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrDuplicateUserID
			}
			return apperr.Store("insert restaurant", err)
		}
		if len(req.OpeningHours) > 0 {
			return hours.ReplaceWeek(tx, restaurant.ID, req.OpeningHours)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.log.Info("restaurant signed up", slog.Uint64("restaurant_id", uint64(restaurant.ID)), slog.String("userid", restaurant.UserID))
	return &restaurant, nil
}

// Login returns the restaurant whose credentials match.
func (d *Directory) Login(ctx context.Context, userID, password string) (*models.Restaurant, error) {
	if userID == "" || password == "" {
		return nil, apperr.Validation("", "userid and password are required")
	}

	var restaurant models.Restaurant
	err := d.db.WithContext(ctx).Where("userid = ?", userID).Take(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Store("load restaurant", err)
	}
	if !d.passwords.Matches(restaurant.Password, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return &restaurant, nil
}

// Update applies the non-nil fields of req to restaurant id.
func (d *Directory) Update(ctx context.Context, id uint, req UpdateRequest) (*models.Restaurant, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperr.Validation("name", "must not be empty")
	}
	if req.UserID != nil && strings.TrimSpace(*req.UserID) == "" {
		return nil, apperr.Validation("userid", "must not be empty")
	}
	if req.Password != nil && *req.Password == "" {
		return nil, apperr.Validation("password", "must not be empty")
	}

	var restaurant models.Restaurant
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Take(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrRestaurantNotFound
			}
			return apperr.Store("load restaurant", err)
		}

		changes := map[string]any{}
		setIf(changes, "name", req.Name)
		setIf(changes, "location", req.Location)
		setIf(changes, "cuisine", req.Cuisine)
		setIf(changes, "phone", req.Phone)
		setIf(changes, "website", req.Website)
		setIf(changes, "description", req.Description)
		if req.UserID != nil && *req.UserID != restaurant.UserID {
			if err := ensureUserIDFree(tx, *req.UserID, id); err != nil {
				return err
			}
			changes["userid"] = *req.UserID
		}
		if req.Password != nil {
			stored, err := d.passwords.Hash(*req.Password)
			if err != nil {
				return apperr.Store("hash password", err)
			}
			changes["password"] = stored
		}
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(&restaurant).Updates(changes).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrDuplicateUserID
			}
			return apperr.Store("update restaurant", err)
		}
		return apperr.Store("reload restaurant", tx.Take(&restaurant, id).Error)
	})
	if err != nil {
		return nil, err
	}

	d.log.Info("restaurant updated", slog.Uint64("restaurant_id", uint64(id)))
	return &restaurant, nil
}

// Get returns restaurant id.
func (d *Directory) Get(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := d.db.WithContext(ctx).Take(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, apperr.Store("load restaurant", err)
	}
	return &restaurant, nil
}

// List returns every restaurant in insertion order.
func (d *Directory) List(ctx context.Context) ([]models.Restaurant, error) {
	restaurants := make([]models.Restaurant, 0)
	if err := d.db.WithContext(ctx).Order("id ASC").Find(&restaurants).Error; err != nil {
		return nil, apperr.Store("list restaurants", err)
	}
	return restaurants, nil
}

// defaultRestaurants are inserted into an empty directory by SeedDefaults.
var defaultRestaurants = []models.Restaurant{
	{Name: "The Italian Place", Location: "123 Main St", Cuisine: "Italian", UserID: "italian-place", Password: "changeme"},
	{Name: "Sushi World", Location: "456 Ocean Ave", Cuisine: "Japanese", UserID: "sushi-world", Password: "changeme"},
	{Name: "Burger Joint", Location: "789 Market Rd", Cuisine: "American", UserID: "burger-joint", Password: "changeme"},
}

// SeedDefaults inserts the sample restaurants when the table is empty and reports how many were added.
func (d *Directory) SeedDefaults(ctx context.Context) (int, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return 0, apperr.Store("count restaurants", err)
	}
	if count > 0 {
		return 0, nil
	}

	rows := make([]models.Restaurant, 0, len(defaultRestaurants))
	for _, r := range defaultRestaurants {
		stored, err := d.passwords.Hash(r.Password)
		if err != nil {
			return 0, apperr.Store("hash password", err)
		}
		r.Password = stored
		rows = append(rows, r)
	}
	if err := d.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, apperr.Store("seed restaurants", err)
	}

	d.log.Info("seeded restaurants table with sample data", slog.Int("count", len(rows)))
	return len(rows), nil
}

func ensureUserIDFree(tx *gorm.DB, userID string, exceptID uint) error {
	var count int64
	q := tx.Model(&models.Restaurant{}).Where("userid = ?", userID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperr.Store("check userid", err)
	}
	if count > 0 {
		return apperr.ErrDuplicateUserID
	}
	return nil
}

func setIf(changes map[string]any, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}
